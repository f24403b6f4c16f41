package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-posting-service/internal/entity"
)

func Test_SetDocument_EmptyPatchCarriesOnlyUpdated(t *testing.T) {
	set := setDocument(&entity.JobUpdate{})

	require.Len(t, set, 1)
	assert.Contains(t, set, "updated")
}

func Test_SetDocument_OnlyProvidedFields(t *testing.T) {
	title := "Senior Engineer"
	model := entity.WorkModelHybrid
	set := setDocument(&entity.JobUpdate{
		Title:     &title,
		Skills:    []string{"go", "mongodb"},
		WorkModel: &model,
	})

	assert.Equal(t, "Senior Engineer", set["title"])
	assert.Equal(t, []string{"go", "mongodb"}, set["skills"])
	assert.Equal(t, entity.WorkModelHybrid, set["work_model"])
	assert.Contains(t, set, "updated")

	assert.NotContains(t, set, "degree")
	assert.NotContains(t, set, "desc")
	assert.NotContains(t, set, "lang")
}

func Test_SetDocument_DegreeReplacedWhole(t *testing.T) {
	set := setDocument(&entity.JobUpdate{
		Degree: &entity.Degree{Level: entity.DegreePhD},
	})

	// the nested object is overwritten as a unit, never merged
	assert.Equal(t, entity.Degree{Level: entity.DegreePhD}, set["degree"])
}
