package workorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCodeRepo struct {
	Repository
	lastCode string
	err      error
	prefix   string
}

func (s *stubCodeRepo) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	s.prefix = prefix
	return s.lastCode, s.err
}

func fixedDay(gen *SequentialCodeGenerator, day time.Time) {
	gen.now = func() time.Time { return day }
}

func TestSequentialCodeGenerator_IncrementsWithinDay(t *testing.T) {
	repo := &stubCodeRepo{lastCode: "WO-20240115-002"}
	gen := NewSequentialCodeGenerator(repo)
	fixedDay(gen, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC))

	code, err := gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240115-003", code)
	assert.Equal(t, "WO-20240115-", repo.prefix)
}

func TestSequentialCodeGenerator_NewDayStartsAtOne(t *testing.T) {
	repo := &stubCodeRepo{lastCode: ""}
	gen := NewSequentialCodeGenerator(repo)
	fixedDay(gen, time.Date(2024, time.January, 16, 0, 30, 0, 0, time.UTC))

	code, err := gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240116-001", code)
}

func TestSequentialCodeGenerator_UnparsableSuffixRestarts(t *testing.T) {
	repo := &stubCodeRepo{lastCode: "WO-20240115-ABC"}
	gen := NewSequentialCodeGenerator(repo)
	fixedDay(gen, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC))

	code, err := gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240115-001", code)
}

func TestSequentialCodeGenerator_PadsSequence(t *testing.T) {
	repo := &stubCodeRepo{lastCode: "WO-20240115-099"}
	gen := NewSequentialCodeGenerator(repo)
	fixedDay(gen, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC))

	code, err := gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240115-100", code)
}

func TestSequentialCodeGenerator_GrowsPastThreeDigits(t *testing.T) {
	repo := &stubCodeRepo{lastCode: "WO-20240115-999"}
	gen := NewSequentialCodeGenerator(repo)
	fixedDay(gen, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC))

	code, err := gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240115-1000", code)

	repo.lastCode = code
	code, err = gen.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WO-20240115-1001", code)
}

func TestSequentialCodeGenerator_RepositoryError(t *testing.T) {
	repo := &stubCodeRepo{err: assert.AnError}
	gen := NewSequentialCodeGenerator(repo)

	_, err := gen.NextCode(context.Background())
	assert.Error(t, err)
}
