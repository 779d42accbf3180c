package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringUsername
	stepEnteringEmail
	stepEnteringPassword
	stepRegistering
	stepLoggingIn
	stepEnteringCollectionName
	stepEnteringCollectionDescription
	stepCreatingCollection
	stepComplete
)

type model struct {
	step           step
	serverURL      string
	username       string
	email          string
	password       string
	authToken      string
	collectionName string
	collectionDesc string
	created        []string
	currentInput   string
	message        string
	quitting       bool
}

type registerSuccessMsg struct{}
type loginSuccessMsg struct{ token string }
type collectionCreatedMsg struct{ name string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:    stepEnteringServer,
		created: []string{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerUser(serverURL, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/user/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		// An already-registered email is fine; we fall through to login.
		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}

		return registerSuccessMsg{}
	}
}

func loginUser(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/user/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("invalid credentials")}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response: %w", err)}
		}

		token, ok := result["token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("login response had no token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func createCollection(serverURL, token, name, description string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"name":        name,
			"description": description,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/collections", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to create collection: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("server returned %d", resp.StatusCode)}
		}

		return collectionCreatedMsg{name: name}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			switch m.step {
			case stepEnteringServer, stepEnteringUsername, stepEnteringEmail,
				stepEnteringPassword, stepEnteringCollectionName, stepEnteringCollectionDescription:
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringServer:
				m.serverURL = strings.TrimRight(m.currentInput, "/")
				if m.serverURL == "" {
					m.serverURL = DEFAULT_SERVER
				}
				m.currentInput = ""
				m.step = stepEnteringUsername

			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepRegistering
					m.message = "Creating account..."
					return m, registerUser(m.serverURL, m.username, m.email, m.password)
				}

			case stepEnteringCollectionName:
				if m.currentInput == "" {
					m.step = stepComplete
					m.message = successStyle.Render(fmt.Sprintf("✓ Setup finished. %d collection(s) created.", len(m.created)))
					break
				}
				m.collectionName = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringCollectionDescription

			case stepEnteringCollectionDescription:
				m.collectionDesc = m.currentInput
				m.currentInput = ""
				m.step = stepCreatingCollection
				m.message = "Creating collection..."
				return m, createCollection(m.serverURL, m.authToken, m.collectionName, m.collectionDesc)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case registerSuccessMsg:
		m.step = stepLoggingIn
		m.message = "Logging in..."
		return m, loginUser(m.serverURL, m.email, m.password)

	case loginSuccessMsg:
		m.authToken = msg.token
		m.step = stepEnteringCollectionName
		m.message = successStyle.Render("✓ Logged in as " + m.email)

	case collectionCreatedMsg:
		m.created = append(m.created, msg.name)
		m.step = stepEnteringCollectionName
		m.message = successStyle.Render("✓ Created collection " + msg.name)

	case errMsg:
		if m.step == stepCreatingCollection {
			m.message = errorStyle.Render("✗ " + msg.err.Error())
			m.step = stepEnteringCollectionName
			break
		}
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringUsername
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📦 Collection Server Setup\n\n"))

	switch m.step {
	case stepEnteringServer:
		s.WriteString(promptStyle.Render("Server URL (blank for " + DEFAULT_SERVER + "):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringUsername:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Choose a username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Choose a password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepRegistering, stepLoggingIn, stepCreatingCollection:
		s.WriteString(m.message + "\n")

	case stepEnteringCollectionName:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Name a collection to create (blank to finish):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringCollectionDescription:
		s.WriteString(promptStyle.Render("Describe " + m.collectionName + " (optional):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		for _, name := range m.created {
			s.WriteString("  - " + name + "\n")
		}
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
