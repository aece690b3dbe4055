package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind_Valid(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.Valid())
	}

	assert.False(t, Kind("WEEKLY_DIGEST").Valid())
	assert.False(t, Kind("").Valid())
}

func TestCounterField(t *testing.T) {
	assert.Equal(t, FieldBusinessCaseReminders, CounterField(KindBusinessCase))
	assert.Equal(t, FieldTransportNotifications, CounterField(KindTransportLoading))
	assert.Equal(t, FieldTransportNotifications, CounterField(KindTransportUnloading))
}

func TestCompany_Location(t *testing.T) {
	berlin := Company{ID: "c1", TimeZone: "Europe/Berlin"}
	assert.Equal(t, "Europe/Berlin", berlin.Location().String())

	unknown := Company{ID: "c2", TimeZone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, unknown.Location())

	unset := Company{ID: "c3"}
	assert.Equal(t, time.UTC, unset.Location())
}
