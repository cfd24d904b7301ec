package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModel is used when neither the profile nor the environment names a model.
const DefaultModel = "gpt-4-1106-preview"

// Profile describes the assistant created at startup.
type Profile struct {
	Name         string
	Instructions string
	Tools        []string
	Model        string
	// Path is empty for the built-in profile.
	Path string
}

// profileFrontMatter mirrors the YAML front matter in ASSISTANT.md.
type profileFrontMatter struct {
	Name  string   `yaml:"name"`
	Model string   `yaml:"model"`
	Tools []string `yaml:"tools"`
}

// Default returns the built-in math-teacher assistant.
func Default() Profile {
	return Profile{
		Name:         "饭团",
		Instructions: "你是一个大学数学老师, 当用户询问你数学问题时, 调用相关的数学函数并进行回答",
		Tools:        []string{"code_interpreter"},
		Model:        DefaultModel,
	}
}

// Load reads a profile from path, or returns Default when path is empty.
// Front matter fields left blank fall back to the built-in values; the
// Markdown body becomes the instructions.
func Load(path string) (Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	fm, body, err := parseFrontMatter(content)
	if err != nil {
		return Profile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(fm.Name) == "" {
		return Profile{}, fmt.Errorf("parse %s: missing front matter name", path)
	}

	p := Default()
	p.Path = path
	p.Name = strings.TrimSpace(fm.Name)
	if model := strings.TrimSpace(fm.Model); model != "" {
		p.Model = model
	}
	if fm.Tools != nil {
		p.Tools = normalizeTools(fm.Tools)
	}
	if instructions := strings.TrimSpace(body); instructions != "" {
		p.Instructions = instructions
	}
	return p, nil
}

// WithModel returns a copy of p using model when it is non-empty.
func (p Profile) WithModel(model string) Profile {
	if model = strings.TrimSpace(model); model != "" {
		p.Model = model
	}
	return p
}

func normalizeTools(tools []string) []string {
	out := make([]string, 0, len(tools))
	seen := make(map[string]bool, len(tools))
	for _, tag := range tools {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// parseFrontMatter splits the YAML front matter from the Markdown body.
func parseFrontMatter(content []byte) (profileFrontMatter, string, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return profileFrontMatter{}, "", fmt.Errorf("missing YAML front matter")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return profileFrontMatter{}, "", fmt.Errorf("unterminated YAML front matter")
	}

	fmText := strings.Join(lines[1:end], "\n")
	var fm profileFrontMatter
	if err := yaml.Unmarshal([]byte(fmText), &fm); err != nil {
		return profileFrontMatter{}, "", err
	}
	return fm, strings.Join(lines[end+1:], "\n"), nil
}
