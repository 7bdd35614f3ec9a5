package models

import (
	"reflect"
	"testing"

	"github.com/laredoma/storefront/internal/geo"
)

func TestOrder_Actions(t *testing.T) {
	loc := &geo.Coordinate{Lat: 8.0012, Lng: -62.3951}

	tests := []struct {
		name     string
		status   OrderStatus
		location *geo.Coordinate
		want     []OrderAction
	}{
		{"pending", StatusPending, nil, []OrderAction{ActionAccept, ActionReject}},
		{"processing with location", StatusProcessing, loc, []OrderAction{ActionViewRoute}},
		{"processing without location", StatusProcessing, nil, []OrderAction{}},
		{"completed", StatusCompleted, loc, []OrderAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{Status: tt.status, Location: tt.location}
			if got := o.Actions(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Actions() = %v, want %v", got, tt.want)
			}
		})
	}
}
