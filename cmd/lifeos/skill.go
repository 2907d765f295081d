// ABOUTME: install-skill command that drops the embedded lifeos skill into ~/.claude/skills.
// ABOUTME: Reads the skill's frontmatter for the summary and skips rewrites of an identical copy.
package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the lifeos skill for Claude Code",
	Long: `Copy the bundled lifeos skill to ~/.claude/skills/lifeos/SKILL.md.

The skill tells Claude Code when to reach for the lifeos MCP tools (logging
meals, workouts, and weigh-ins, or checking the daily score) and how to fall
back to the CLI when the MCP server is not connected.

Run it again after upgrading lifeos to pick up a newer skill.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home, os.Stdin, os.Stdout)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "install without asking")
	rootCmd.AddCommand(installSkillCmd)
}

// skillMeta is the frontmatter block at the top of SKILL.md.
type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseSkillMeta reads the YAML between the leading "---" fences.
func parseSkillMeta(content []byte) (skillMeta, error) {
	fence := []byte("---\n")
	if !bytes.HasPrefix(content, fence) {
		return skillMeta{}, errors.New("skill has no frontmatter")
	}
	body := content[len(fence):]
	end := bytes.Index(body, []byte("\n---"))
	if end < 0 {
		return skillMeta{}, errors.New("skill frontmatter is not closed")
	}

	var meta skillMeta
	if err := yaml.Unmarshal(body[:end], &meta); err != nil {
		return skillMeta{}, fmt.Errorf("parse skill frontmatter: %w", err)
	}
	if meta.Name == "" {
		return skillMeta{}, errors.New("skill frontmatter has no name")
	}
	return meta, nil
}

// installSkill writes the embedded skill under home, asking on in unless
// --yes was given.
func installSkill(home string, in io.Reader, out io.Writer) error {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}
	meta, err := parseSkillMeta(content)
	if err != nil {
		return err
	}

	skillDir := filepath.Join(home, ".claude", "skills", meta.Name)
	skillPath := filepath.Join(skillDir, "SKILL.md")

	existing, err := os.ReadFile(skillPath)
	switch {
	case err == nil && bytes.Equal(existing, content):
		fmt.Fprintf(out, "The %s skill at %s is already up to date.\n", meta.Name, skillPath)
		return nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read installed skill: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Fprintf(out, "%s skill for Claude Code\n", meta.Name)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", meta.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Target: %s\n", skillPath)
	if existing != nil {
		color.New(color.FgYellow).Fprintln(out, "An older copy is installed there and will be replaced.")
	}
	fmt.Fprintln(out)

	if !skillSkipConfirm {
		ok, err := confirm(in, out, "Install it?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.New(color.FgGreen).Fprintf(out, "✓ Installed %s skill\n", meta.Name)
	fmt.Fprintln(out, `Try: "log oatmeal for breakfast, 380 calories" or "what's my score today?"`)
	return nil
}
