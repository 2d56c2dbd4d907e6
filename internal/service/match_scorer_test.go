package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servicematch/internal/model"
)

func TestMatchScorer_Score(t *testing.T) {
	scorer := NewMatchScorer()

	tests := []struct {
		name             string
		seekerLocation   string
		providerLocation string
		expectedScore    int
	}{
		{
			name:             "same location earns the bonus",
			seekerLocation:   "Berlin",
			providerLocation: "Berlin",
			expectedScore:    75,
		},
		{
			name:             "different locations score the base",
			seekerLocation:   "Berlin",
			providerLocation: "Paris",
			expectedScore:    50,
		},
		{
			name:             "empty seeker location scores the base",
			seekerLocation:   "",
			providerLocation: "Berlin",
			expectedScore:    50,
		},
		{
			name:             "empty provider location scores the base",
			seekerLocation:   "Berlin",
			providerLocation: "",
			expectedScore:    50,
		},
		{
			name:             "both locations empty score the base",
			seekerLocation:   "",
			providerLocation: "",
			expectedScore:    50,
		},
		{
			name:             "location comparison is case sensitive",
			seekerLocation:   "berlin",
			providerLocation: "Berlin",
			expectedScore:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeker := &model.User{Role: model.RoleSeeker, Location: tt.seekerLocation}
			provider := &model.User{Role: model.RoleProvider, Location: tt.providerLocation}

			score := scorer.Score(seeker, provider)

			assert.Equal(t, tt.expectedScore, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}
