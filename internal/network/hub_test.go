package network

import (
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

func TestRegisterAndSend(t *testing.T) {
	b := NewBroadcaster()

	ch := b.Register("p1")
	if !b.HasSubscriber("p1") {
		t.Fatal("Expected subscriber after register")
	}

	b.SendTo("p1", api.ServerResponse{Type: "UPDATE", Round: 3})
	msg := <-ch
	if msg.Round != 3 {
		t.Errorf("Expected round 3, got %d", msg.Round)
	}

	// Отправка незнакомцу не паникует и никуда не уходит
	b.SendTo("ghost", api.ServerResponse{})
}

func TestReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()

	old := b.Register("p1")
	fresh := b.Register("p1")

	if _, ok := <-old; ok {
		t.Error("Old channel must be closed on re-register")
	}

	b.SendTo("p1", api.ServerResponse{Type: "UPDATE"})
	select {
	case msg := <-fresh:
		if msg.Type != "UPDATE" {
			t.Errorf("Unexpected message %+v", msg)
		}
	default:
		t.Error("Fresh channel did not receive the message")
	}

	if b.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", b.SubscriberCount())
	}
}

func TestUnregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("p1")
	b.Unregister("p1")

	if b.HasSubscriber("p1") {
		t.Error("Expected no subscriber after unregister")
	}
	if _, ok := <-ch; ok {
		t.Error("Channel must be closed on unregister")
	}

	// Повторная отписка безвредна
	b.Unregister("p1")
}

func TestSendToFullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Register("p1")

	// Переполняем буфер: лишние снимки молча теряются
	for i := 0; i < 150; i++ {
		b.SendTo("p1", api.ServerResponse{Round: i})
	}
}
