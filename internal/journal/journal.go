// Package journal appends human-readable records to plain text log files.
// Every record is written with one open/write/close cycle so a failure never
// leaves a half-written block behind an earlier one.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chefbot/internal/models"
)

const orderSeparator = "-----------------------------"

// Paths locates the three log files. Relative file names are resolved
// against Dir.
type Paths struct {
	Dir             string
	Chat            string
	Orders          string
	Recommendations string
}

// Journal writes chat, order and recommendation records
type Journal struct {
	chatPath           string
	orderPath          string
	recommendationPath string
}

// New prepares a journal, creating the log directory if needed
func New(paths Paths) (*Journal, error) {
	dir := paths.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	return &Journal{
		chatPath:           resolve(dir, paths.Chat, "chat_log.txt"),
		orderPath:          resolve(dir, paths.Orders, "order_history.txt"),
		recommendationPath: resolve(dir, paths.Recommendations, "recommendations.txt"),
	}, nil
}

func resolve(dir, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// RecordInput appends one received line to the chat log
func (j *Journal) RecordInput(line string) error {
	return appendRecord(j.chatPath, "User: "+line+"\n")
}

// RecordOrder appends a confirmed order block to the order history
func (j *Journal) RecordOrder(order models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant: %s\n", order.Restaurant)
	fmt.Fprintf(&b, "Item: %s\n", order.Item.Name)
	fmt.Fprintf(&b, "Price: Rs %.2f\n", order.Item.Price)
	fmt.Fprintf(&b, "Tax: Rs %.2f\n", order.Tax)
	fmt.Fprintf(&b, "Total: Rs %.2f\n", order.Total)
	b.WriteString(orderSeparator + "\n")
	return appendRecord(j.orderPath, b.String())
}

// RecordRecommendation appends a one-line summary of a recommendation query
func (j *Journal) RecordRecommendation(keyword string, ceiling float64) error {
	line := fmt.Sprintf("Keyword: %s, MaxPrice: %s\n", keyword, strconv.FormatFloat(ceiling, 'f', -1, 64))
	return appendRecord(j.recommendationPath, line)
}

func appendRecord(path, record string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.WriteString(record); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
