package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/config"
	"github.com/bnema/tilemux/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	defaultLogsAge   = 7
	tailInterval     = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View playground session logs",
	Long: `View tilemux logs by session. Every 'tilemux play' run writes its own file
when logging.enable_file_log is set.

Without arguments, lists all available sessions.
With a session ID (or partial match), shows logs for that session.

Examples:
  tilemux logs                 # List all sessions
  tilemux logs a7b3            # View logs for session ending in 'a7b3'
  tilemux logs -f a7b3         # Follow logs in real-time
  tilemux logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old session log files.

By default, removes sessions older than logging.max_age days (default 7).
Use --all to remove all sessions.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all session logs")
}

// SessionInfo holds metadata about a log session.
type SessionInfo struct {
	SessionID string
	ShortID   string
	Filename  string
	Path      string
	Size      int64
	ModTime   time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	logDir := getLogDir(app.Config.Logging.LogDir)

	if len(args) == 0 {
		return listSessions(out, logDir, app.Theme)
	}

	session, err := findSession(logDir, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		return tailSession(cmd.Context(), out, session.Path, app.Theme)
	}
	return showSession(out, session.Path, logsLines, app.Theme)
}

// getLogDir returns the configured log directory or the XDG default.
func getLogDir(configured string) string {
	if configured != "" {
		return configured
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, _ := os.UserHomeDir()
			stateDir = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateDir, "tilemux", "logs")
	}
	return logDir
}

// listSessions displays all available log sessions.
func listSessions(w io.Writer, logDir string, theme *styles.Theme) error {
	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(w, theme.Subtle.Render("No sessions found. Run 'tilemux play' to create logs."))
		return nil
	}

	fmt.Fprintln(w, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(w)

	for i := range sessions {
		s := &sessions[i]
		fmt.Fprintf(w, "  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(s.Size))),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Subtle.Render("Use 'tilemux logs <id>' to view a session"))
	return nil
}

// getSessions returns all session log files, sorted by modification time (newest first).
func getSessions(logDir string) ([]SessionInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var sessions []SessionInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		sessionID, ok := logging.ParseSessionFilename(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		sessions = append(sessions, SessionInfo{
			SessionID: sessionID,
			ShortID:   logging.ShortSessionID(sessionID),
			Filename:  entry.Name(),
			Path:      filepath.Join(logDir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// findSession finds a session by short ID, then by partial ID match.
func findSession(logDir, query string) (*SessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	queryNormalized := strings.ToLower(strings.TrimSpace(query))

	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, queryNormalized) {
			return &sessions[i], nil
		}
	}

	var matches []SessionInfo
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].SessionID), queryNormalized) {
			matches = append(matches, sessions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for i := range matches {
			ids = append(ids, matches[i].ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession displays the last N lines of a session log.
func showSession(w io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var allLines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		allLines = append(allLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	start := 0
	if lines >= 0 && len(allLines) > lines {
		start = len(allLines) - lines
	}
	for _, line := range allLines[start:] {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailSession follows a session log until ctx is done.
func tailSession(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(w)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(tailInterval):
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("read log file: %w", err)
		}

		line := strings.TrimSuffix(pending, "\n")
		pending = ""
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
}

// logEntry is the subset of a zerolog JSON line the viewer shows.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Error     string `json:"error"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: "15:04:05 WRN message key=value"
	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("FTL")
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	parts := []string{theme.Subtle.Render(timeStr), levelStr}
	if entry.Component != "" {
		parts = append(parts, theme.Subtle.Render("["+entry.Component+"]"))
	}
	parts = append(parts, entry.Message)
	if entry.Error != "" {
		parts = append(parts, theme.ErrorStyle.Render("error="+entry.Error))
	}
	return strings.Join(parts, " ")
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()

	sessions, err := getSessions(getLogDir(app.Config.Logging.LogDir))
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}

	maxAge := defaultLogsAge
	if app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	removed := clearSessions(out, sessions, time.Now().AddDate(0, 0, -maxAge), logsClearAll, app.SessionID, app.Theme)
	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("No sessions older than %d days", maxAge)))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d session(s)", removed)))
	return nil
}

// clearSessions removes sessions last written before cutoff, or all of them,
// never the current one. It returns how many were removed.
func clearSessions(w io.Writer, sessions []SessionInfo, cutoff time.Time, all bool, current string, theme *styles.Theme) int {
	removed := 0
	for i := range sessions {
		s := &sessions[i]
		if s.SessionID == current || (!all && !s.ModTime.Before(cutoff)) {
			continue
		}

		if err := os.Remove(s.Path); err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), s.ShortID, err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), s.ShortID, formatSize(s.Size))
		removed++
	}
	return removed
}
