package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sovella.fi/paint-engine/api"
)

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	received := make(chan *api.UpdateProgressCommand, 1)
	broker.Subscribe(api.ImportStatusUpdated, func(command *api.UpdateProgressCommand) {
		received <- command
	})

	broker.SendCommandToTopic(api.ImportStatusUpdated, &api.UpdateProgressCommand{
		Name:    "Importing layers",
		Current: 1,
		Total:   5,
	})

	select {
	case command := <-received:
		a.Equal("Importing layers", command.Name)
		a.Equal(1, command.Current)
		a.Equal(5, command.Total)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for command")
	}
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	received := make(chan *api.ErrorCommand, 1)
	broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command
	})

	broker.SendError("Could not load image", nil)

	select {
	case command := <-received:
		a.Equal("Could not load image", command.Message)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error command")
	}
}
