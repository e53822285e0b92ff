package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recondesk-dev/recondesk/internal/model"
)

func TestSetResult_PopulatesCache(t *testing.T) {
	s := New()
	s.SetResult(&model.ReconciliationResult{
		StatusApplications: map[string][]string{
			"PENDING": {"A1", "A2"},
		},
	})

	assert.Equal(t, []string{"A1", "A2"}, s.Applications("PENDING"))
	assert.Nil(t, s.Applications("UNKNOWN"))
}

func TestSetResult_ReplacesWholesale(t *testing.T) {
	s := New()
	s.SetResult(&model.ReconciliationResult{
		StatusApplications: map[string][]string{"OLD": {"X1"}},
	})
	s.SetResult(&model.ReconciliationResult{
		StatusApplications: map[string][]string{"NEW": {"Y1"}},
	})

	assert.Nil(t, s.Applications("OLD"))
	assert.Equal(t, []string{"Y1"}, s.Applications("NEW"))
}

func TestApplications_EmptyWhenMappingAbsent(t *testing.T) {
	s := New()
	s.SetResult(&model.ReconciliationResult{
		StatusCounts: map[string]int{"MATCHED": 3},
	})

	// Nothing to rebuild from: the cache stays empty for this payload shape.
	assert.Nil(t, s.Applications("MATCHED"))
}

func TestApplications_StableForResultLifetime(t *testing.T) {
	s := New()
	s.SetResult(&model.ReconciliationResult{
		StatusApplications: map[string][]string{"PENDING": {"A1", "A2"}},
	})

	first := s.Applications("PENDING")
	second := s.Applications("PENDING")
	require.Equal(t, first, second)
	assert.Same(t, &first[0], &second[0], "same backing array across reads")
}

func TestReset_ClearsEverythingAtomically(t *testing.T) {
	s := New()
	id := s.ID()

	ref := &model.FileRef{Path: "exchange.csv", Name: "exchange.csv", Size: 10}
	s.SelectExchange(ref)
	s.SelectPSP(&model.FileRef{Path: "psp.csv", Name: "psp.csv", Size: 5})
	s.SetResult(&model.ReconciliationResult{
		StatusApplications: map[string][]string{"PENDING": {"A1"}},
	})
	require.True(t, s.Selection().Complete())

	s.Reset()

	assert.Nil(t, s.Result())
	assert.Nil(t, s.Applications("PENDING"))
	assert.False(t, s.Selection().Complete())
	assert.Nil(t, s.Selection().Exchange)
	assert.NotEqual(t, id, s.ID(), "reset starts a fresh session identity")
}

func TestSelection_ReplacedWholesale(t *testing.T) {
	s := New()
	s.SelectExchange(&model.FileRef{Path: "a.csv"})
	s.SelectExchange(&model.FileRef{Path: "b.csv"})

	assert.Equal(t, "b.csv", s.Selection().Exchange.Path)
	assert.Nil(t, s.Selection().PSP)
}
