package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/file-organizer/internal"
)

func (m *model) View() string {
	switch m.state {
	case StatePickDir:
		return m.pickDirView()
	case StateMenu:
		return m.menuView()
	case StateConfirm:
		return m.confirmView()
	case StateWorking:
		return m.workingView()
	case StateResult:
		return m.resultView()
	default:
		return "unknown state"
	}
}

func (m *model) pickDirView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 File Organization Wizard") + "\n\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")
	b.WriteString(labelStyle.Render("Which folder should be organized?") + "\n")
	b.WriteString(m.dirInput.View() + "\n\n")
	b.WriteString(hintStyle.Render("Enter to confirm • Ctrl+C to quit") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) menuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 File Organization Wizard") + "\n")
	b.WriteString("Folder: " + pathStyle.Render(m.root) + "\n\n")
	b.WriteString(m.menu.View() + "\n")
	b.WriteString(hintStyle.Render("↑/↓ select • Enter confirm • Ctrl+C quit") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) confirmView() string {
	var b strings.Builder

	what := "move files"
	if m.pending == actionUndo {
		what = "undo the last organization"
	}

	b.WriteString(titleStyle.Render("⚠️  Confirmation required") + "\n\n")
	b.WriteString(fmt.Sprintf("This will %s in %s.\n\n", what, pathStyle.Render(m.root)))
	b.WriteString(hintStyle.Render("y to continue • n to cancel") + "\n")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func (m *model) workingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 Working...") + "\n\n")
	b.WriteString(m.spinner.View() + "  processing " + pathStyle.Render(m.root) + "\n")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func (m *model) resultView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ "+m.err.Error()) + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ Done") + "\n\n")
		b.WriteString(resultBoxStyle.Render(m.result) + "\n\n")
	}
	b.WriteString(hintStyle.Render("Enter to return to the menu • Ctrl+C to quit") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func renderReport(report *internal.Report) string {
	var b strings.Builder

	if report.DryRun {
		b.WriteString(fmt.Sprintf("Preview: organizing by %s\n", report.Mode))
	} else {
		b.WriteString(fmt.Sprintf("Organized by %s\n", report.Mode))
	}
	b.WriteString(fmt.Sprintf("Total files: %d | Total size: %s\n\n", report.TotalFiles, internal.FormatBytes(report.TotalSize)))

	for _, bucket := range report.Buckets {
		b.WriteString(fmt.Sprintf("📁 %s/\n", bucket.Name))
		b.WriteString(fmt.Sprintf("   Files: %d | Size: %s\n", bucket.Files, internal.FormatBytes(bucket.Size)))
		for _, name := range bucket.Samples {
			b.WriteString(fmt.Sprintf("   - %s\n", name))
		}
		if bucket.Files > len(bucket.Samples) {
			b.WriteString(fmt.Sprintf("   ... and %d more\n", bucket.Files-len(bucket.Samples)))
		}
	}

	if !report.DryRun {
		b.WriteString(fmt.Sprintf("\nMoved %d files.\n", report.Moved))
	}
	renderFailures(&b, report.Failures)

	return b.String()
}

func renderUndoResult(result *internal.UndoResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Restored %d files.\n", result.Restored))
	for _, dir := range result.RemovedDirs {
		b.WriteString(fmt.Sprintf("🗑  Removed empty folder: %s\n", filepath.Base(dir)))
	}
	renderFailures(&b, result.Unrestorable)

	return b.String()
}

func renderDedupReport(report *internal.DedupReport, root string) string {
	var b strings.Builder

	if len(report.Groups) == 0 {
		b.WriteString(fmt.Sprintf("No duplicates among %d files. ✨\n", report.Scanned))
		renderFailures(&b, report.Failures)
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Found %d sets of duplicate files:\n\n", len(report.Groups)))
	for i, group := range report.Groups {
		b.WriteString(fmt.Sprintf("Duplicate set #%d (%s):\n", i+1, internal.FormatBytes(group.Size)))
		for _, path := range group.Paths {
			if rel, err := filepath.Rel(root, path); err == nil {
				path = rel
			}
			b.WriteString(fmt.Sprintf("  - %s\n", path))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Reclaimable space: %s\n", internal.FormatBytes(report.Reclaimable)))
	renderFailures(&b, report.Failures)

	return b.String()
}

func renderFailures(b *strings.Builder, failures []internal.Failure) {
	if len(failures) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("\n%d files could not be processed:\n", len(failures)))
	for _, failure := range failures {
		b.WriteString(fmt.Sprintf("  ✗ %s: %s\n", failure.Path, failure.Reason))
	}
}
