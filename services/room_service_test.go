package services

import (
	"math"
	"testing"

	"phongtro/models"
)

func TestMeanRating(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}
	if got := MeanRating(reviews); math.Abs(got-4.0) > 1e-9 {
		t.Fatalf("trung bình phải là 4.0, được %f", got)
	}

	if got := MeanRating(nil); got != 0 {
		t.Fatalf("không có review phải trả 0, được %f", got)
	}
}
