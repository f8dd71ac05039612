package services_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sarang-church/backend/models"
	"github.com/sarang-church/backend/services"
)

func samplePosts() []models.NewsPost {
	return []models.NewsPost{
		{ID: 2, Title: "부활절 연합예배", Date: "2024-03-31", Category: "행사안내", Views: 87, ShowOnHome: true},
		{ID: 1, Title: "주보 안내", Date: "2024-03-24", Category: "공지사항", Views: 12},
	}
}

func TestNewsToExcel(t *testing.T) {
	data, err := services.NewsToExcel(samplePosts())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Korean content must survive the round trip intact
	title, err := f.GetCellValue("News", "D2")
	require.NoError(t, err)
	require.Equal(t, "부활절 연합예배", title)

	category, err := f.GetCellValue("News", "C3")
	require.NoError(t, err)
	require.Equal(t, "공지사항", category)

	date, err := f.GetCellValue("News", "B3")
	require.NoError(t, err)
	require.Equal(t, "2024-03-24", date)
}

func TestNewsToExcel_Empty(t *testing.T) {
	data, err := services.NewsToExcel(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
