package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agrisathi/knowledge"
	"go-agrisathi/models"
)

func TestResolveAdvisory(t *testing.T) {
	t.Run("matched crop returns first recorded disease", func(t *testing.T) {
		interp := ClassifyQuery("What is wrong with my tomato leaves, they have yellow spots")
		res, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusMatched, res.Status)
		require.NotNil(t, res.Advice)
		assert.Equal(t, "Tomato", res.Advice.Crop)
		assert.Equal(t, "Early Blight", res.Advice.Disease)
		assert.NotEmpty(t, res.Advice.Treatment)
	})

	t.Run("same interpretation resolves identically", func(t *testing.T) {
		interp := ClassifyQuery("my rice has yellow spots")
		res1, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		res2, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, res1, res2)
	})

	t.Run("no symptoms means no automated match", func(t *testing.T) {
		interp := ClassifyQuery("tell me about my tomato")
		res, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusNoAutomatedMatch, res.Status)
		assert.Nil(t, res.Advice)
	})

	t.Run("no canonical crop means no automated match", func(t *testing.T) {
		interp := ClassifyQuery("my plants have yellow spots")
		res, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusNoAutomatedMatch, res.Status)
	})

	t.Run("crop without disease records is skipped", func(t *testing.T) {
		// 小麦没有病害记录，解析器顺延到水稻
		interp := ClassifyQuery("wheat and rice have yellow spots")
		res, err := ResolveAdvisory(interp, models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusMatched, res.Status)
		require.NotNil(t, res.Advice)
		assert.Equal(t, "Rice", res.Advice.Crop)
		assert.Equal(t, "Blast", res.Advice.Disease)
	})

	t.Run("localizes advice to hindi", func(t *testing.T) {
		interp := ClassifyQuery("my tomato has yellow spots")
		res, err := ResolveAdvisory(interp, models.LangHindi)
		require.NoError(t, err)
		assert.Equal(t, StatusMatched, res.Status)
		assert.NotEmpty(t, res.Advice.Treatment)
	})
}

func TestAnalyzeImage(t *testing.T) {
	t.Run("detects a known disease for the crop", func(t *testing.T) {
		detector := NewSimulatedDetectorSeed(1)
		res, err := AnalyzeImage(detector, "Tomato", models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusDetected, res.Status)
		require.NotNil(t, res.Advice)
		assert.Equal(t, "Tomato", res.Advice.Crop)
		assert.Contains(t, []string{"Early Blight", "Late Blight"}, res.Advice.Disease)
	})

	t.Run("crop without records is healthy or unknown", func(t *testing.T) {
		detector := NewSimulatedDetectorSeed(1)
		res, err := AnalyzeImage(detector, "Wheat", models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, StatusHealthyOrUnknown, res.Status)
		assert.Nil(t, res.Advice)
	})

	t.Run("same seed reproduces the detection", func(t *testing.T) {
		res1, err := AnalyzeImage(NewSimulatedDetectorSeed(7), "Tomato", models.LangEnglish)
		require.NoError(t, err)
		res2, err := AnalyzeImage(NewSimulatedDetectorSeed(7), "Tomato", models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, res1, res2)
	})
}

type fixedDetector struct {
	record knowledge.DiseaseRecord
	ok     bool
}

func (d fixedDetector) Detect(string) (knowledge.DiseaseRecord, bool) {
	return d.record, d.ok
}

func TestAnalyzeImageWithCustomDetector(t *testing.T) {
	records := knowledge.GetDiseases("Potato")
	require.NotEmpty(t, records)

	res, err := AnalyzeImage(fixedDetector{record: records[0], ok: true}, "Potato", models.LangPunjabi)
	require.NoError(t, err)
	assert.Equal(t, StatusDetected, res.Status)
	assert.Equal(t, "Late Blight", res.Advice.Disease)
}
