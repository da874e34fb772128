package domain_test

import (
	"testing"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAgeGroupForBirthDate(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  domain.AgeGroup
	}{
		{"two year old", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), domain.AgeGroupBaby},
		{"eight year old", time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC), domain.AgeGroupChild},
		{"fifteen year old", time.Date(2011, 2, 20, 0, 0, 0, 0, time.UTC), domain.AgeGroupAdolescent},
		{"twenty five year old", time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), domain.AgeGroupYouth},
		{"forty year old", time.Date(1986, 5, 5, 0, 0, 0, 0, time.UTC), domain.AgeGroupAdult},
		{"seventy year old", time.Date(1956, 1, 1, 0, 0, 0, 0, time.UTC), domain.AgeGroupSenior},
		{"birthday later this year", time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC), domain.AgeGroupAdolescent},
		{"turns eighteen today", time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC), domain.AgeGroupYouth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AgeGroupForBirthDate(tt.birth, now))
		})
	}
}
