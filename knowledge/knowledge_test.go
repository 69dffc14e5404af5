package knowledge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agrisathi/models"
)

func TestCrops(t *testing.T) {
	crops := Crops()
	assert.Equal(t, []string{"Rice", "Wheat", "Tomato", "Potato", "Maize", "Sugarcane"}, crops)

	for _, crop := range crops {
		assert.True(t, HasCrop(crop), crop)
	}
	assert.False(t, HasCrop("Mango"))
	assert.False(t, HasCrop("rice"), "crop lookup is case sensitive")
}

func TestGetCropProfile(t *testing.T) {
	t.Run("every crop has a complete english profile", func(t *testing.T) {
		for _, crop := range Crops() {
			profile, err := GetCropProfile(crop, models.LangEnglish)
			require.NoError(t, err, crop)
			assert.Equal(t, crop, profile.Crop)
			assert.NotEmpty(t, profile.SoilType, crop)
			assert.NotEmpty(t, profile.Season, crop)
			assert.NotEmpty(t, profile.WaterNeedLabel, crop)
			assert.NotEmpty(t, profile.CommonPests, crop)
			assert.NotEmpty(t, profile.Fertilizer, crop)
			assert.Greater(t, profile.PHMax, profile.PHMin, crop)
		}
	})

	t.Run("profiles resolve in all supported languages", func(t *testing.T) {
		for _, lang := range models.SupportedLanguages {
			profile, err := GetCropProfile("Rice", lang)
			require.NoError(t, err, lang)
			assert.NotEmpty(t, profile.Season, lang)
		}
	})

	t.Run("rice profile values", func(t *testing.T) {
		profile, err := GetCropProfile("Rice", models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, models.WaterHigh, profile.WaterNeed)
		assert.Equal(t, 5.0, profile.PHMin)
		assert.Equal(t, 6.5, profile.PHMax)
	})

	t.Run("unknown crop", func(t *testing.T) {
		_, err := GetCropProfile("Mango", models.LangEnglish)
		assert.ErrorIs(t, err, ErrUnknownCrop)
	})

	t.Run("unknown language reports missing translation", func(t *testing.T) {
		_, err := GetCropProfile("Rice", "fr")
		assert.ErrorIs(t, err, ErrMissingTranslation)
	})
}

func TestGetDiseases(t *testing.T) {
	t.Run("records keep insertion order", func(t *testing.T) {
		records := GetDiseases("Tomato")
		require.Len(t, records, 2)
		assert.Equal(t, "Early Blight", records[0].Name)
		assert.Equal(t, "Late Blight", records[1].Name)
	})

	t.Run("crop without records returns empty slice", func(t *testing.T) {
		assert.Empty(t, GetDiseases("Wheat"))
		assert.Empty(t, GetDiseases("Mango"))
	})

	t.Run("every record references a known crop", func(t *testing.T) {
		for _, crop := range Crops() {
			for _, record := range GetDiseases(crop) {
				assert.Equal(t, crop, record.Crop)
				assert.True(t, HasCrop(record.Crop))
			}
		}
	})

	t.Run("records localize in all supported languages", func(t *testing.T) {
		for _, crop := range Crops() {
			for _, record := range GetDiseases(crop) {
				for _, lang := range models.SupportedLanguages {
					info, err := record.Localize(lang)
					require.NoError(t, err, "%s/%s/%s", crop, record.Name, lang)
					assert.NotEmpty(t, info.Symptoms)
					assert.NotEmpty(t, info.Treatment)
					assert.NotEmpty(t, info.Prevention)
				}
			}
		}
	})
}

func TestGetDisease(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		info, err := GetDisease("Rice", "Blast", models.LangEnglish)
		require.NoError(t, err)
		assert.Equal(t, "Rice", info.Crop)
		assert.Equal(t, "Blast", info.Disease)
		assert.NotEmpty(t, info.Treatment)
	})

	t.Run("unknown disease", func(t *testing.T) {
		_, err := GetDisease("Rice", "Rust", models.LangEnglish)
		assert.ErrorIs(t, err, ErrUnknownDisease)
	})

	t.Run("unknown crop", func(t *testing.T) {
		_, err := GetDisease("Mango", "Blast", models.LangEnglish)
		assert.ErrorIs(t, err, ErrUnknownDisease)
	})
}

func TestMessage(t *testing.T) {
	t.Run("localized alert messages", func(t *testing.T) {
		for _, key := range []string{MsgRainAlert, MsgTempAlert, MsgWindAlert, MsgExpertThankYou} {
			for _, lang := range models.SupportedLanguages {
				msg, err := Message(key, lang)
				require.NoError(t, err, "%s/%s", key, lang)
				assert.NotEmpty(t, msg)
			}
		}
	})

	t.Run("english only warnings report missing translation", func(t *testing.T) {
		_, err := Message(MsgWaterloggingWarn, models.LangHindi)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingTranslation))

		msg, err := Message(MsgWaterloggingWarn, models.LangEnglish)
		require.NoError(t, err)
		assert.NotEmpty(t, msg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Message("no_such_key", models.LangEnglish)
		assert.Error(t, err)
	})
}

func TestCities(t *testing.T) {
	cities := Cities()
	require.NotEmpty(t, cities)
	assert.Equal(t, "Jorethang", cities[0])
	assert.Contains(t, cities, "Delhi")
}

func TestTips(t *testing.T) {
	assert.NotEmpty(t, SoilTips())
	assert.NotEmpty(t, AgriTips())
	assert.NotEmpty(t, GovSchemes())

	calendar := CropCalendar()
	require.NotEmpty(t, calendar)
	for _, entry := range calendar {
		assert.NotEmpty(t, entry.Month)
		assert.NotEmpty(t, entry.Activity)
	}

	// 返回的是副本，调用方修改不影响内部数据
	tips := SoilTips()
	tips[0] = "mutated"
	assert.NotEqual(t, tips[0], SoilTips()[0])
}
