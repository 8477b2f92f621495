package workorder

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mantis/internal/shared/biztime"
)

// CodePrefix returns the day-scoped code prefix, e.g. "WO-20240115-".
func CodePrefix(day time.Time) string {
	return fmt.Sprintf("WO-%s-", biztime.DayStamp(day))
}

// SequentialCodeGenerator issues codes of the form WO-YYYYMMDD-NNN by
// scanning existing codes for the day and incrementing the greatest suffix.
// The sequence restarts at 1 on a new day or when the stored suffix cannot
// be parsed.
type SequentialCodeGenerator struct {
	repo Repository
	now  func() time.Time
}

func NewSequentialCodeGenerator(repo Repository) *SequentialCodeGenerator {
	return &SequentialCodeGenerator{
		repo: repo,
		now:  biztime.NowUTC,
	}
}

func (g *SequentialCodeGenerator) NextCode(ctx context.Context) (string, error) {
	prefix := CodePrefix(g.now())

	last, err := g.repo.LastCodeWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to look up last work order code: %w", err)
	}

	seq := 1
	if last != "" {
		if n, ok := parseSequence(last); ok {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

func parseSequence(code string) (int, bool) {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(code[idx+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
