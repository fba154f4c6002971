package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/context-maximiser/sampleproc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenario(t *testing.T) {
	sc := Default()

	assert.Equal(t, "reference", sc.Name)
	assert.Equal(t, []models.Value{
		models.Text("apple"), models.Text("banana"), models.Absent(), models.Text("cherry"),
	}, sc.Items)
	assert.Equal(t, []models.Value{
		models.Number(10), models.Number(20), models.Text("30"), models.Number(40),
	}, sc.Prices)
}

func TestParseYAMLKeepsQuotedNumeralsAsText(t *testing.T) {
	doc := `
name: mixed
items: [apple, banana, null, cherry, ~]
prices: [10, 20, "30", 40.5]
`
	sc, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "mixed", sc.Name)
	assert.Equal(t, models.Values("apple", "banana", nil, "cherry", nil), sc.Items)
	assert.Equal(t, models.Values(10, 20, "30", 40.5), sc.Prices)
}

func TestParseYAMLMissingSequences(t *testing.T) {
	sc, err := Parse([]byte("name: empty\n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, sc.Items)
	assert.Empty(t, sc.Prices)
}

func TestParseYAMLRejectsUnsupportedValues(t *testing.T) {
	docs := []string{
		"items: apple\n",
		"items: [[nested]]\n",
		"prices: [true]\n",
		"prices: [10, .nan]\n",
		"prices: [.inf]\n",
		"prices: [-.Inf]\n",
		"items: [\n",
	}

	for _, doc := range docs {
		_, err := Parse([]byte(doc), FormatYAML)
		assert.Error(t, err, doc)
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"name": "json", "items": ["apple", null, "cherry"], "prices": [10, "30", 2.5]}`

	sc, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "json", sc.Name)
	assert.Equal(t, models.Values("apple", nil, "cherry"), sc.Items)
	assert.Equal(t, models.Values(10, "30", 2.5), sc.Prices)
}

func TestParseJSONRejectsUnsupportedValues(t *testing.T) {
	docs := []string{
		`{"items": "apple"}`,
		`{"items": [true]}`,
		`{"prices": [{"a": 1}]}`,
		`{"name": 5}`,
		`[1, 2]`,
	}

	for _, doc := range docs {
		_, err := Parse([]byte(doc), FormatJSON)
		assert.Error(t, err, doc)
	}
}

func TestLoadUsesFileNameWhenUnnamed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groceries.yml")
	require.NoError(t, os.WriteFile(path, []byte("items: [milk]\nprices: [3]\n"), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "groceries", sc.Name)
	assert.Equal(t, models.Values("milk"), sc.Items)
	assert.Equal(t, models.Values(3), sc.Prices)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("scenario.toml")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
