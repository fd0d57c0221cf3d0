package ui

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/ds"
	"github.com/rminderhoud/Revise/rose"
	"github.com/samber/lo"
)

type (
	// Entry is a single browsable item: a subdirectory, or a file the
	// converter recognizes.
	Entry struct {
		Name  string
		IsDir bool
	}

	KeyMap struct {
		Up    key.Binding
		Down  key.Binding
		Enter key.Binding
		Back  key.Binding
		Quit  key.Binding
	}

	FilePicker struct {
		keys    KeyMap
		cwd     string
		entries []Entry
		cursor  int
		history *ds.Stack[string]
		notice  string
	}
)

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open or convert"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "h"),
		key.WithHelp("backspace", "go back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cwdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func CreateFilePicker() (FilePicker, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return FilePicker{}, errors.Wrap(err, "CreateFilePicker error: get working directory")
	}
	entries, err := readEntries(cwd)
	if err != nil {
		return FilePicker{}, errors.Wrap(err, "CreateFilePicker error")
	}
	return FilePicker{
		keys:    DefaultKeyMap,
		cwd:     cwd,
		entries: entries,
		history: ds.NewStack[string](),
	}, nil
}

// readEntries lists path's subdirectories followed by its convertible
// files. Hidden entries and files the converter does not recognize are
// left out.
func readEntries(path string) ([]Entry, error) {
	fileInfos, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, `readEntries error: read directory "%s"`, path)
	}
	entries := make([]Entry, 0, len(fileInfos))
	for _, fileInfo := range fileInfos {
		if strings.HasPrefix(fileInfo.Name(), ".") {
			continue
		}
		if fileInfo.IsDir() {
			entries = append(entries, Entry{Name: fileInfo.Name(), IsDir: true})
			continue
		}
		if convertibleFile(filepath.Join(path, fileInfo.Name())) {
			entries = append(entries, Entry{Name: fileInfo.Name()})
		}
	}
	directories := lo.Filter(entries, func(entry Entry, _ int) bool { return entry.IsDir })
	files := lo.Filter(entries, func(entry Entry, _ int) bool { return !entry.IsDir })
	return append(directories, files...), nil
}

// convertibleFile reports whether the converter recognizes the file's
// content. Game data files are small, so reading whole files while
// browsing stays cheap.
func convertibleFile(path string) bool {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return false
	}
	return rose.SniffFormat(bs) != rose.FormatUnknown
}

func (r FilePicker) Init() tea.Cmd {
	return nil
}

func (r FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch {
	case key.Matches(keyMsg, r.keys.Quit):
		return r, tea.Quit
	case key.Matches(keyMsg, r.keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(keyMsg, r.keys.Down):
		if r.cursor < len(r.entries)-1 {
			r.cursor++
		}
	case key.Matches(keyMsg, r.keys.Enter):
		return r.enter(), nil
	case key.Matches(keyMsg, r.keys.Back):
		return r.back(), nil
	}
	return r, nil
}

func (r FilePicker) enter() FilePicker {
	if len(r.entries) == 0 {
		return r
	}
	entry := r.entries[r.cursor]
	path := filepath.Join(r.cwd, entry.Name)
	if entry.IsDir {
		return r.changeDirectory(path, true)
	}
	outputPath, err := convertFile(path)
	if err != nil {
		r.notice = errorStyle.Render(err.Error())
		return r
	}
	r.notice = noticeStyle.Render(fmt.Sprintf(`Wrote "%s"`, outputPath))
	return r
}

func (r FilePicker) back() FilePicker {
	if r.history.Len() > 0 {
		return r.changeDirectory(r.history.Pop(), false)
	}
	parent := filepath.Dir(r.cwd)
	if parent == r.cwd {
		return r
	}
	return r.changeDirectory(parent, false)
}

func (r FilePicker) changeDirectory(path string, push bool) FilePicker {
	entries, err := readEntries(path)
	if err != nil {
		r.notice = errorStyle.Render(err.Error())
		return r
	}
	if push {
		r.history.Push(r.cwd)
	}
	r.cwd = path
	r.entries = entries
	r.cursor = 0
	r.notice = ""
	return r
}

func (r FilePicker) View() string {
	lines := []string{
		titleStyle.Render("REVISE"),
		cwdStyle.Render(r.cwd),
		"",
	}
	if len(r.entries) == 0 {
		lines = append(lines, helpStyle.Render("(nothing convertible here)"))
	}
	lines = append(
		lines,
		lo.Map(
			r.entries,
			func(entry Entry, index int) string {
				name := entry.Name
				if entry.IsDir {
					name = dirStyle.Render(name + "/")
				}
				if index == r.cursor {
					return cursorStyle.Render("> ") + name
				}
				return "  " + name
			},
		)...,
	)
	if r.notice != "" {
		lines = append(lines, "", r.notice)
	}
	lines = append(lines, "", helpStyle.Render(r.helpLine()))
	return strings.Join(lines, "\n") + "\n"
}

func (r FilePicker) helpLine() string {
	bindings := []key.Binding{r.keys.Up, r.keys.Down, r.keys.Enter, r.keys.Back, r.keys.Quit}
	parts := lo.Map(
		bindings,
		func(binding key.Binding, _ int) string {
			help := binding.Help()
			return fmt.Sprintf("%s %s", help.Key, help.Desc)
		},
	)
	return strings.Join(parts, " • ")
}

// convertFile converts path's content and writes the result next to it:
// binary files gain a ".json" suffix, JSON documents lose theirs.
func convertFile(path string) (string, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, `convertFile error: read "%s"`, path)
	}
	resultBytes, err := rose.Convert(bs)
	if err != nil {
		return "", errors.Wrapf(err, `convertFile error: convert "%s"`, path)
	}
	outputPath := OutputPath(path, rose.SniffFormat(bs))
	if err := ioutil.WriteFile(outputPath, resultBytes, 0644); err != nil {
		return "", errors.Wrapf(err, `convertFile error: write "%s"`, outputPath)
	}
	return outputPath, nil
}

// OutputPath derives where a converted file lands. Documents drop their
// ".json" suffix to recover the binary name; binary files gain one.
func OutputPath(path string, format rose.Format) string {
	if format == rose.FormatJSON {
		trimmed := strings.TrimSuffix(path, ".json")
		if trimmed != path {
			return trimmed
		}
		return path + ".bin"
	}
	return path + ".json"
}
