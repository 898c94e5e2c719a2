package amqp

import (
	"testing"
	"time"
)

func TestRecordSyncMessageRoundTrip(t *testing.T) {
	msg := NewRecordSyncMessage(42, 1)
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should be set on creation")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	decoded, err := RecordSyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if decoded.ID != 42 || decoded.Version != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if !decoded.Timestamp.Truncate(time.Millisecond).Equal(msg.Timestamp.Truncate(time.Millisecond)) {
		t.Errorf("timestamp drifted: %v vs %v", decoded.Timestamp, msg.Timestamp)
	}
}

func TestRecordSyncMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := RecordSyncMessageFromJSON([]byte("not-json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
