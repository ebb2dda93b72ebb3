package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMockSourceList(t *testing.T) {
	source := NewMockSource()

	all, err := source.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 10)

	limited, err := source.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
	require.Equal(t, "Ivy University", limited[0].Name)

	over, err := source.List(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, over, 10)
}

func TestMockSourceGetByID(t *testing.T) {
	source := NewMockSource()

	college, ok := source.GetByID(context.Background(), "4")
	require.True(t, ok)
	require.Equal(t, "Tech Institute", college.Name)

	_, ok = source.GetByID(context.Background(), "404")
	require.False(t, ok)
}

func TestMockSourceSearch(t *testing.T) {
	source := NewMockSource()

	byName, err := source.Search(context.Background(), "ivy", 25)
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byState, err := source.Search(context.Background(), "ma", 25)
	require.NoError(t, err)
	require.NotEmpty(t, byState)

	byMajor, err := source.Search(context.Background(), "computer science", 25)
	require.NoError(t, err)
	require.Len(t, byMajor, 4)

	limited, err := source.Search(context.Background(), "computer science", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestSourceManager(t *testing.T) {
	manager := NewSourceManager()
	manager.Register("mock", NewMockSource())
	manager.Register("scorecard", NewScorecardSource("", time.Second, zerolog.Nop()))

	source, ok := manager.Get("mock")
	require.True(t, ok)
	require.NotNil(t, source)

	_, ok = manager.Get("missing")
	require.False(t, ok)

	require.Equal(t, []string{"mock", "scorecard"}, manager.Available())
}

func TestScorecardSourceWithoutKeyServesMock(t *testing.T) {
	source := NewScorecardSource("", time.Second, zerolog.Nop())

	colleges, err := source.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, colleges, 5)

	results, err := source.Search(context.Background(), "state", 25)
	require.NoError(t, err)
	require.NotEmpty(t, results)
}
