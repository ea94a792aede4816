package portal

import (
	"io"
	"log/slog"
	"strings"
)

func FilterNonEmpty(values []string) []string {
	var out []string

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}

	return out
}

// SplitList splits a comma-separated query value into its trimmed items.
func SplitList(seed string) []string {
	if strings.TrimSpace(seed) == "" {
		return nil
	}

	return FilterNonEmpty(strings.Split(seed, ","))
}

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}
