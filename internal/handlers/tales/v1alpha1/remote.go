package v1alpha1

import (
	"context"
	"io"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
)

// RemoteWatcher adapts the WatchRoom stream of a remote server to
// session.Watcher so a Follower can run on the client side
type RemoteWatcher struct {
	client talesv1alpha1.TalesServiceClient
}

// NewRemoteWatcher wraps client
func NewRemoteWatcher(client talesv1alpha1.TalesServiceClient) *RemoteWatcher {
	return &RemoteWatcher{client: client}
}

// Ensure RemoteWatcher implements session.Watcher
var _ session.Watcher = (*RemoteWatcher)(nil)

// WatchRoom opens the stream and relays its messages. The player is the one
// named by the bearer token on ctx, so input.PlayerID is not sent.
func (w *RemoteWatcher) WatchRoom(ctx context.Context, input *session.WatchRoomInput) (*session.WatchRoomOutput, error) {
	stream, err := w.client.WatchRoom(ctx, &talesv1alpha1.WatchRoomRequest{Code: input.Code})
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}

	updates := make(chan session.RoomUpdate)
	go func() {
		defer close(updates)

		for {
			msg, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				if status.Code(err) != codes.Canceled {
					slog.Warn("room stream failed", "code", input.Code, "error", err)
				}
				return
			}

			update := session.RoomUpdate{
				State:  RoomFromProto(msg.GetRoom()),
				Screen: ScreenFromProto(msg.GetScreen()),
				Gone:   msg.GetGone(),
			}

			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &session.WatchRoomOutput{Updates: updates}, nil
}
