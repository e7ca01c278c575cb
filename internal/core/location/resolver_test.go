package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/core/domain"
)

func values(options []domain.LocationOption) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Value)
	}
	return out
}

func TestCountries(t *testing.T) {
	r := NewResolver()
	assert.Equal(t, []string{"tr", "cy", "ae", "us"}, values(r.Countries()))
}

func TestLookupMissReturnsEmpty(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		name string
		got  []domain.LocationOption
	}{
		{"states of unknown country", r.States("xx")},
		{"states of stateless country", r.States("tr")},
		{"states of absent country", r.States("")},
		{"cities of unknown country", r.Cities("xx", "")},
		{"cities of absent country", r.Cities("", "")},
		{"cities skipping state", r.Cities("us", "")},
		{"cities of unknown state", r.Cities("us", "tx")},
		{"districts of unknown city", r.Districts("tr", "konya")},
		{"districts of absent city", r.Districts("tr", "")},
		{"districts of city without districts", r.Districts("us", "orlando")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.got)
			assert.Empty(t, tt.got)
		})
	}
}

func TestHierarchyLookups(t *testing.T) {
	r := NewResolver()

	assert.Contains(t, values(r.Cities("tr", "")), "istanbul")
	assert.Equal(t, []string{"ca", "fl", "ny"}, values(r.States("us")))
	assert.Equal(t, []string{"miami", "orlando"}, values(r.Cities("us", "fl")))
	assert.Contains(t, values(r.Districts("tr", "istanbul")), "kadikoy")
	assert.Equal(t, "Kadıköy", r.Label(domain.LocationPath{Country: "tr", City: "istanbul", District: "kadikoy"}))
	assert.Equal(t, "", r.Label(domain.LocationPath{Country: "tr", City: "ankara", District: "kadikoy"}))
}

func TestResultsAreCopies(t *testing.T) {
	r := NewResolver()
	first := r.Countries()
	first[0].Value = "mutated"
	assert.Equal(t, "tr", r.Countries()[0].Value)
}

func TestLookupsAreDeterministic(t *testing.T) {
	r := NewResolver()
	assert.Equal(t, r.Districts("tr", "mugla"), r.Districts("tr", "mugla"))
	assert.Equal(t, Default().Countries(), NewResolver().Countries())
}

func TestContains(t *testing.T) {
	r := NewResolver()
	assert.True(t, r.Contains(domain.LocationPath{Country: "tr", City: "istanbul", District: "kadikoy"}))
	assert.True(t, r.Contains(domain.LocationPath{Country: "us", State: "ny", City: "new-york"}))
	assert.False(t, r.Contains(domain.LocationPath{Country: "us", City: "new-york"}))
	assert.False(t, r.Contains(domain.LocationPath{Country: "tr", District: "kadikoy"}))
	assert.False(t, r.Contains(domain.LocationPath{}))
}

func TestSelectorCascade(t *testing.T) {
	r := NewResolver()

	s := r.Select(domain.LocationPath{}).SelectCountry("us").SelectState("ny").SelectCity("new-york").SelectDistrict("queens")
	require.Equal(t, domain.LocationPath{Country: "us", State: "ny", City: "new-york", District: "queens"}, s.Path)
	assert.Equal(t, []string{"brooklyn", "manhattan", "queens"}, values(s.Districts))

	t.Run("country change resets every child", func(t *testing.T) {
		next := s.SelectCountry("tr")
		assert.Equal(t, domain.LocationPath{Country: "tr"}, next.Path)
		assert.Empty(t, next.States)
		assert.Contains(t, values(next.Cities), "istanbul")
		assert.Empty(t, next.Districts)
	})

	t.Run("state change resets city and district", func(t *testing.T) {
		next := s.SelectState("fl")
		assert.Equal(t, domain.LocationPath{Country: "us", State: "fl"}, next.Path)
		assert.Equal(t, []string{"miami", "orlando"}, values(next.Cities))
		assert.Empty(t, next.Districts)
	})

	t.Run("city change resets district", func(t *testing.T) {
		next := s.SelectState("ny").SelectCity("new-york")
		assert.Equal(t, "queens", next.Path.District, "same city keeps district")

		tr := r.Select(domain.LocationPath{Country: "tr", City: "istanbul", District: "kadikoy"}).SelectCity("izmir")
		assert.Equal(t, domain.LocationPath{Country: "tr", City: "izmir"}, tr.Path)
		assert.Contains(t, values(tr.Districts), "cesme")
	})

	t.Run("previous selector is untouched", func(t *testing.T) {
		_ = s.SelectCountry("cy")
		assert.Equal(t, "queens", s.Path.District)
	})
}

func TestSelectDropsOrphans(t *testing.T) {
	s := NewResolver().Select(domain.LocationPath{State: "ny", District: "queens"})
	assert.True(t, s.Path.IsEmpty())
	assert.Empty(t, s.States)
	assert.Empty(t, s.Cities)
}
