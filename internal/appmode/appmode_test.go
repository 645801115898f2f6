package appmode_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rust:\nsafe, fast, productive.\nPick three.\ntrust me."), 0o644))

	var out bytes.Buffer
	ai := &model.AppInit{
		Mode: model.ModeSearch,
		Run:  &model.RunConfig{Query: "RuSt", FilePath: path},
	}
	require.NoError(t, appmode.RunSearch(ai, &out, zap.NewNop()))
	require.Equal(t, "Rust:\ntrust me.\n", out.String())

	out.Reset()
	ai.Run = &model.RunConfig{Query: "RuSt", FilePath: path + ".missing"}
	require.ErrorIs(t, appmode.RunSearch(ai, &out, zap.NewNop()), reader.ErrFileRead)
	require.Empty(t, out.String())
}

func TestRunNode(t *testing.T) {
	t.Run("Positive - stops on cancelled context", func(t *testing.T) {
		ctx, stop := context.WithCancel(context.Background())
		ai := &model.AppInit{Mode: model.ModeNode, Address: "127.0.0.1:0"}

		done := make(chan error, 1)
		go func() { done <- appmode.RunNode(ctx, stop, ai, zap.NewNop()) }()
		stop()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("RunNode didn't stop after cancel")
		}
	})

	t.Run("Negative - invalid address", func(t *testing.T) {
		ctx, stop := context.WithCancel(context.Background())
		defer stop()
		ai := &model.AppInit{Mode: model.ModeNode, Address: "127.0.0.1:-1"}

		done := make(chan error, 1)
		go func() { done <- appmode.RunNode(ctx, stop, ai, zap.NewNop()) }()

		select {
		case err := <-done:
			require.Error(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("RunNode didn't fail on invalid address")
		}
	})
}
