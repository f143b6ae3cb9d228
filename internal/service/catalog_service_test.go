package service

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func TestCatalogKeepsSortedOrder(t *testing.T) {
	catalog := NewCatalog(&memCourseStore{}, nil)
	for _, record := range []models.CourseRecord{
		courseRecord("CSC316", "001", "TH", 1330, 1445),
		courseRecord("CSC216", "002", "MW", 1330, 1445),
		courseRecord("CSC116", "001", "MW", 910, 1100),
		courseRecord("CSC216", "001", "TH", 1330, 1445),
	} {
		_, err := catalog.Add(record)
		require.NoError(t, err)
	}

	names := lo.Map(catalog.Rows(), func(row models.CourseSummary, _ int) string {
		return row.Name + "-" + row.Section
	})
	assert.Equal(t, []string{"CSC116-001", "CSC216-001", "CSC216-002", "CSC316-001"}, names)
}

func TestCatalogAddRejectsDuplicatesAndInvalidRecords(t *testing.T) {
	catalog := NewCatalog(&memCourseStore{}, nil)
	_, err := catalog.Add(courseRecord("CSC216", "001", "MW", 1330, 1445))
	require.NoError(t, err)

	_, err = catalog.Add(courseRecord("CSC216", "001", "TH", 800, 915))
	assert.True(t, errors.Is(err, appErrors.ErrDuplicate))

	_, err = catalog.Add(courseRecord("CSC216", "002", "TH", 800, 915))
	assert.NoError(t, err)

	_, err = catalog.Add(courseRecord("CS21", "001", "MW", 1330, 1445))
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
	assert.Equal(t, 2, catalog.Len())
}

func TestCatalogGetAndRemove(t *testing.T) {
	catalog := NewCatalog(&memCourseStore{}, nil)
	_, err := catalog.Add(courseRecord("CSC216", "001", "MW", 1330, 1445))
	require.NoError(t, err)

	course, err := catalog.Get("CSC216", "001")
	require.NoError(t, err)
	assert.Equal(t, "Title CSC216", course.Title())

	_, err = catalog.Get("CSC216", "002")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	removed, ok := catalog.Remove("CSC216", "001")
	assert.True(t, ok)
	assert.Same(t, course, removed)
	_, ok = catalog.Remove("CSC216", "001")
	assert.False(t, ok)
}

func TestCatalogLoadSkipsInvalidRowsAndSaves(t *testing.T) {
	store := &memCourseStore{records: []models.CourseRecord{
		courseRecord("CSC216", "001", "MW", 1330, 1445),
		courseRecord("CSC216", "001", "TH", 1330, 1445),
		courseRecord("CSC226", "001", "MWF", 935, 1025),
		{Name: "BAD", Section: "1"},
	}}
	catalog := NewCatalog(store, nil)

	skipped, err := catalog.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 2, catalog.Len())

	first, err := catalog.Get("CSC216", "001")
	require.NoError(t, err)
	assert.Equal(t, "MW", first.Meeting().Days)

	require.NoError(t, catalog.Save(context.Background()))
	assert.Equal(t, catalog.Records(), store.saved)

	catalog.Clear()
	assert.Zero(t, catalog.Len())
}

func TestCatalogLoadFailure(t *testing.T) {
	catalog := NewCatalog(&memCourseStore{loadErr: errors.New("unreadable")}, nil)
	_, err := catalog.Load(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
