package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kirksw/orgls/internal/github"
)

// BrowseResult holds the outcome of the interactive repository browser.
type BrowseResult struct {
	Repo      *github.Repo
	Cancelled bool
}

type repoDelegate struct{}

func (d repoDelegate) Height() int                             { return 2 }
func (d repoDelegate) Spacing() int                            { return 1 }
func (d repoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d repoDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	repo, ok := listItem.(repoItem)
	if !ok {
		return
	}

	str := repo.Name
	if repo.License != nil {
		str += fmt.Sprintf("  [%s]", repo.License.Key)
	}
	if repo.Description != "" {
		str += fmt.Sprintf("\n  %s", truncateString(repo.Description, 60))
	}

	var style lipgloss.Style
	if index == m.Index() {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	} else {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	}

	fmt.Fprint(w, style.Render(str))
}

type repoItem struct {
	github.Repo
}

func (i repoItem) FilterValue() string {
	license := ""
	if i.License != nil {
		license = i.License.Key
	}
	return fmt.Sprintf("%s %s %s", i.Name, license, i.Description)
}

type browseModel struct {
	org        string
	repos      []github.Repo
	repoList   list.Model
	textinput  textinput.Model
	licenses   []string
	licenseIdx int
	lastInput  string
	selected   *github.Repo
	quitting   bool
	width      int
	height     int
}

func newBrowseModel(org string, repos []github.Repo) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search repos..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 80

	l := list.New(nil, repoDelegate{}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetWidth(80)
	l.SetHeight(12)

	m := browseModel{
		org:       org,
		repos:     repos,
		textinput: ti,
		repoList:  l,
		licenses:  licenseCycle(repos),
		width:     80,
		height:    20,
	}

	l.SetItems(m.filterRepos(""))
	m.repoList = l

	return m
}

// licenseCycle returns the license filter rotation: no filter first,
// then each distinct key in the listing, sorted.
func licenseCycle(repos []github.Repo) []string {
	seen := make(map[string]bool)
	for _, repo := range repos {
		if repo.License != nil && repo.License.Key != "" {
			seen[repo.License.Key] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return append([]string{""}, keys...)
}

func (m browseModel) currentLicense() string {
	if len(m.licenses) == 0 {
		return ""
	}
	return m.licenses[m.licenseIdx%len(m.licenses)]
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.repoList.SetWidth(msg.Width)
		listHeight := msg.Height - 8
		if listHeight < 4 {
			listHeight = 4
		}
		m.repoList.SetHeight(listHeight)
		m.textinput.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.selected = nil
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.repoList.Items()) > 0 {
				if item := m.repoList.SelectedItem(); item != nil {
					if ri, ok := item.(repoItem); ok {
						m.selected = &ri.Repo
						m.quitting = true
						return m, tea.Quit
					}
				}
			}
			return m, nil

		case tea.KeyTab:
			m.licenseIdx = (m.licenseIdx + 1) % len(m.licenses)
			m.repoList.SetItems(m.filterRepos(m.textinput.Value()))
			m.repoList.ResetSelected()
			return m, nil

		case tea.KeyDown, tea.KeyCtrlN:
			m.repoList.CursorDown()
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			m.repoList.CursorUp()
			return m, nil
		}
	}

	ti, cmd := m.textinput.Update(msg)
	m.textinput = ti

	if current := m.textinput.Value(); current != m.lastInput {
		m.lastInput = current
		m.repoList.SetItems(m.filterRepos(current))
		m.repoList.ResetSelected()
	}

	return m, cmd
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("228")).
		Bold(true)

	instructionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	filterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("120")).
		Bold(true)

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s repositories", m.org)))
	if license := m.currentLicense(); license != "" {
		b.WriteString("  ")
		b.WriteString(filterStyle.Render(fmt.Sprintf("license: %s", license)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.textinput.View())
	b.WriteString("\n\n")

	if len(m.repoList.Items()) > 0 {
		b.WriteString(m.repoList.View())
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No repos found"))
	}

	b.WriteString("\n\n")

	instructions := []string{
		"up/down: navigate",
		"tab: cycle license filter",
		"enter: select",
		"esc: cancel",
	}
	b.WriteString(instructionStyle.Render(strings.Join(instructions, " | ")))

	return b.String()
}

func (m browseModel) filterRepos(query string) []list.Item {
	query = strings.ToLower(query)
	license := m.currentLicense()

	var items []list.Item
	for _, repo := range m.repos {
		if license != "" && !github.HasLicense(repo, license) {
			continue
		}
		if query != "" {
			if !strings.Contains(strings.ToLower(repo.Name), query) &&
				!strings.Contains(strings.ToLower(repo.FullName), query) &&
				!strings.Contains(strings.ToLower(repo.Description), query) {
				continue
			}
		}
		items = append(items, repoItem{Repo: repo})
	}
	return items
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// RunBrowse launches the interactive browser over an already-fetched
// repository listing.
func RunBrowse(org string, repos []github.Repo) (*BrowseResult, error) {
	p := tea.NewProgram(
		newBrowseModel(org, repos),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run repository browser: %w", err)
	}

	final, ok := finalModel.(browseModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	if final.selected == nil {
		return &BrowseResult{Cancelled: true}, nil
	}

	return &BrowseResult{Repo: final.selected}, nil
}
