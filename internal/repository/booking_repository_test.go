package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListViewsQueryAllRows(t *testing.T) {
	query, args := listViewsQuery("")

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "ORDER BY")
	assert.Empty(t, args)
}

func TestListViewsQueryByTeacher(t *testing.T) {
	query, args := listViewsQuery("user_42")

	assert.Contains(t, query, "WHERE b.user_id = $1")
	assert.Contains(t, query, "ORDER BY b.date DESC")
	assert.Equal(t, []interface{}{"user_42"}, args)
}
