package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestService_EmptySlotsEncodeAsArray(t *testing.T) {
	data, err := json.Marshal(Service{Name: "X-Ray", Slots: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"X-Ray","slots":[]}`, string(data))
}

func TestZeroObjectIDIsOmitted(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "service", value: Service{Name: "Cleaning", Slots: []string{"09:00"}}, want: `{"name":"Cleaning","slots":["09:00"]}`},
		{name: "service summary", value: ServiceSummary{Name: "Cleaning"}, want: `{"name":"Cleaning"}`},
		{name: "doctor", value: Doctor{Name: "Dr. Who", Email: "who@x.com", Specialty: "Orthodontics"}, want: `{"name":"Dr. Who","email":"who@x.com","specialty":"Orthodontics"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestServiceSummary_EncodesSetID(t *testing.T) {
	id := primitive.NewObjectID()
	data, err := json.Marshal(ServiceSummary{ID: id, Name: "Cleaning"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+id.Hex()+`","name":"Cleaning"}`, string(data))
}
