package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"puckpattern/internal/domain"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		name string
		x    *float64
		want domain.Zone
	}{
		{"nil defaults neutral", nil, domain.ZoneNeutral},
		{"deep offensive", fp(60), domain.ZoneOffensive},
		{"just past blue line", fp(25.1), domain.ZoneOffensive},
		{"on blue line is neutral", fp(25), domain.ZoneNeutral},
		{"center ice", fp(0), domain.ZoneNeutral},
		{"on far blue line is neutral", fp(-25), domain.ZoneNeutral},
		{"defensive", fp(-26), domain.ZoneDefensive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZoneFor(tt.x))
		})
	}
}
