package cipherstring

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitProcessorCreated(_ *testing.T) {
	// Should not panic
	emitProcessorCreated(context.Background(), "application/json", "Cipher")
}

func TestEmitReceive(_ *testing.T) {
	ctx := context.Background()
	emitReceiveStart(ctx, "application/json", "Cipher")
	emitReceiveComplete(ctx, "application/json", "Cipher", time.Millisecond, 3, nil)
	emitReceiveComplete(ctx, "application/json", "Cipher", time.Millisecond, 1, errors.New("rejected"))
}

func TestEmitLoad(_ *testing.T) {
	ctx := context.Background()
	emitLoadStart(ctx, "application/yaml", "Item")
	emitLoadComplete(ctx, "application/yaml", "Item", time.Millisecond, 6, nil)
	emitLoadComplete(ctx, "application/yaml", "Item", time.Millisecond, 0, errors.New("unmarshal failed"))
}

func TestEmitStore(_ *testing.T) {
	ctx := context.Background()
	emitStoreStart(ctx, "application/bson", "Cipher")
	emitStoreComplete(ctx, "application/bson", "Cipher", 128, time.Millisecond, 3, nil)
	emitStoreComplete(ctx, "application/bson", "Cipher", 0, time.Millisecond, 2, errors.New("rejected"))
}

func TestEmitFieldRejected(_ *testing.T) {
	emitFieldRejected(context.Background(), "Cipher", "Name", ReasonEmptySegment.String(), "2.***|***|***")
}
