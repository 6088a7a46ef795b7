package orm_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/internal/testdb"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

func TestNewPageRequest(t *testing.T) {
	_, err := orm.NewPageRequest(0, 5, "venue_id asc")
	assert.ErrorIs(t, err, orm.ErrInvalidPage)

	_, err = orm.NewPageRequest(1, 0, "venue_id asc")
	assert.ErrorIs(t, err, orm.ErrInvalidPage)

	_, err = orm.NewPageRequest(1, 5, " ")
	assert.ErrorIs(t, err, orm.ErrInvalidPage)

	_, err = orm.NewPageRequest(3689348814741910324, 5, "venue_id asc")
	assert.ErrorIs(t, err, orm.ErrInvalidPage, "offset would wrap negative")

	_, err = orm.NewPageRequest(math.MaxInt, 2, "venue_id asc")
	assert.ErrorIs(t, err, orm.ErrInvalidPage)

	req, err := orm.NewPageRequest(math.MaxInt, 1, "venue_id asc")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, req.Offset())

	req, err = orm.NewPageRequest(3, 5, "venue_id asc")
	require.NoError(t, err)
	assert.Equal(t, 10, req.Offset())
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 10, 2},
	}
	for _, tc := range cases {
		p := orm.Page[int]{PageSize: tc.size, TotalCount: tc.total}
		assert.Equal(t, tc.want, p.TotalPages(), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestMapKeepsPagingData(t *testing.T) {
	p := orm.Page[int]{Items: []int{3, 1, 2}, Offset: 10, PageSize: 5, TotalCount: 13}

	got := orm.Map(p, func(in []int) []string {
		out := make([]string, len(in))
		for i, n := range in {
			out[i] = fmt.Sprint(n)
		}
		return out
	})

	assert.Equal(t, []string{"3", "1", "2"}, got.Items)
	assert.Equal(t, 10, got.Offset)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, int64(13), got.TotalCount)
}

func TestPaginate(t *testing.T) {
	db := testdb.Open(t)
	for i := 1; i <= 7; i++ {
		testdb.Insert(t, db, &models.Venue{VenueName: fmt.Sprintf("venue-%d", i), Price: i})
	}

	req, err := orm.NewPageRequest(2, 5, "venue_id asc")
	require.NoError(t, err)
	p, err := orm.Paginate[models.Venue](db.Model(&models.Venue{}), req)
	require.NoError(t, err)

	assert.Equal(t, int64(7), p.TotalCount)
	assert.Equal(t, 2, p.TotalPages())
	require.Len(t, p.Items, 2)
	assert.Equal(t, "venue-6", p.Items[0].VenueName)
	assert.Equal(t, "venue-7", p.Items[1].VenueName)
}

func TestPaginatePastTheEndIsEmpty(t *testing.T) {
	db := testdb.Open(t)
	testdb.Insert(t, db, &models.Venue{VenueName: "only"})

	req, err := orm.NewPageRequest(4, 5, "venue_id asc")
	require.NoError(t, err)
	p, err := orm.Paginate[models.Venue](db.Model(&models.Venue{}), req)
	require.NoError(t, err)

	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(1), p.TotalCount)
}

func TestPaginateKeepsWhereClause(t *testing.T) {
	db := testdb.Open(t)
	testdb.Insert(t, db,
		&models.Message{UserID: "a", Content: "x", State: models.StatePending},
		&models.Message{UserID: "a", Content: "y", State: models.StateApproved},
		&models.Message{UserID: "b", Content: "z", State: models.StateApproved},
	)

	req, err := orm.NewPageRequest(1, 5, "message_id asc")
	require.NoError(t, err)
	q := db.Model(&models.Message{}).Where("state = ?", int(models.StateApproved))
	p, err := orm.Paginate[models.Message](q, req)
	require.NoError(t, err)

	assert.Equal(t, int64(2), p.TotalCount)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "y", p.Items[0].Content)
	assert.Equal(t, "z", p.Items[1].Content)
}
