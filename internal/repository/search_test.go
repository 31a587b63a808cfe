package repository

import (
	"testing"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilter_Empty(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		_, err := BuildSearchFilter(q)
		require.Error(t, err, "query %q", q)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestBuildSearchFilter_Numeric(t *testing.T) {
	filter, err := BuildSearchFilter("5")
	require.NoError(t, err)

	contains := primitive.Regex{Pattern: "5", Options: "i"}
	assert.Equal(t, bson.M{"$or": []bson.M{
		{"price": float64(5)},
		{"spaces": float64(5)},
		{"subject": contains},
		{"location": contains},
	}}, filter)
}

func TestBuildSearchFilter_NumericFraction(t *testing.T) {
	filter, err := BuildSearchFilter("9.5")
	require.NoError(t, err)

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"price": 9.5}, or[0])
	assert.Equal(t, bson.M{"spaces": 9.5}, or[1])
}

func TestBuildSearchFilter_SingleChar(t *testing.T) {
	filter, err := BuildSearchFilter("a")
	require.NoError(t, err)

	contains := primitive.Regex{Pattern: "a", Options: "i"}
	assert.Equal(t, bson.M{"$or": []bson.M{
		{"subject": contains},
		{"location": contains},
	}}, filter)
}

func TestBuildSearchFilter_SingleRune(t *testing.T) {
	// многобайтовый символ — все еще один символ
	filter, err := BuildSearchFilter("ш")
	require.NoError(t, err)

	_, ok := filter["$or"]
	assert.True(t, ok)
}

func TestBuildSearchFilter_Text(t *testing.T) {
	filter, err := BuildSearchFilter("art")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$text": bson.M{"$search": "art"}}, filter)
}

func TestBuildSearchFilter_TrimsWhitespace(t *testing.T) {
	filter, err := BuildSearchFilter("  art  ")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$text": bson.M{"$search": "art"}}, filter)
}

func TestBuildSearchFilter_QuotesRegexMeta(t *testing.T) {
	filter, err := BuildSearchFilter("c")
	require.NoError(t, err)
	or := filter["$or"].([]bson.M)
	assert.Equal(t, primitive.Regex{Pattern: "c", Options: "i"}, or[0]["subject"])

	// метасимволы не должны попадать в шаблон как есть
	filter, err = BuildSearchFilter("+")
	require.NoError(t, err)
	or = filter["$or"].([]bson.M)
	assert.Equal(t, primitive.Regex{Pattern: `\+`, Options: "i"}, or[0]["subject"])
}
