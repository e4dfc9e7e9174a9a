package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/ZetoOfficial/vk-toolkit/internal/storage"
)

type Args struct {
	Request  models.CollectRequest
	LogLevel string
	LogFile  string
	Query    string
}

// ParseArgs разбирает аргументы командной строки (без имени программы).
func ParseArgs(args []string, output io.Writer) (Args, error) {
	fs := flag.NewFlagSet("vk_app", flag.ContinueOnError)
	fs.SetOutput(output)

	userIDs := fs.String("user_ids", "self", "Comma-separated VK user IDs (default is the current user).")
	groupIDs := fs.String("group_ids", "", "Comma-separated VK group IDs to fetch.")
	withAudio := fs.Bool("audio", false, "Collect audio and lyrics of the first user.")
	logLevel := fs.String("log_level", "INFO", "Set the logging level (DEBUG, INFO, WARNING, ERROR, CRITICAL).")
	logFile := fs.String("log_file", "", "Set the log file path. If not set, logs will be printed to console.")
	query := fs.String("query", "", "Run a predefined query instead of collecting data: "+strings.Join(storage.QueryNames(), ", ")+".")

	if err := fs.Parse(args); err != nil {
		return Args{}, err
	}

	if *query != "" && !storage.HasQuery(*query) {
		fs.Usage()
		return Args{}, fmt.Errorf("query %s not found", *query)
	}

	parsed := Args{
		LogLevel: *logLevel,
		LogFile:  *logFile,
		Query:    *query,
	}
	parsed.Request.WithAudio = *withAudio

	var err error
	if *userIDs != "self" {
		if parsed.Request.UserIDs, err = parseIDs(*userIDs); err != nil {
			return Args{}, fmt.Errorf("user_ids: %w", err)
		}
	}
	if parsed.Request.GroupIDs, err = parseIDs(*groupIDs); err != nil {
		return Args{}, fmt.Errorf("group_ids: %w", err)
	}
	return parsed, nil
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
