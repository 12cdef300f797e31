// Package v1alpha1 handles the tales gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/auth"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
)

// Authenticator verifies the bearer token of a call and returns a context
// carrying the caller
type Authenticator interface {
	AuthFunc(ctx context.Context) (context.Context, error)
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SessionService session.Service
	Authenticator  Authenticator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	if c.Authenticator == nil {
		return errors.InvalidArgument("authenticator is required")
	}
	return nil
}

// Handler implements TalesServiceServer
type Handler struct {
	talesv1alpha1.UnimplementedTalesServiceServer
	sessionService session.Service
	authenticator  Authenticator
}

// NewHandler creates a new tales handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessionService: cfg.SessionService,
		authenticator:  cfg.Authenticator,
	}, nil
}

// Ensure Handler implements TalesServiceServer
var _ talesv1alpha1.TalesServiceServer = (*Handler)(nil)

// AuthFuncOverride lets Authenticate through without a token and verifies
// the bearer token of every other call
func (h *Handler) AuthFuncOverride(ctx context.Context, fullMethodName string) (context.Context, error) {
	if fullMethodName == talesv1alpha1.TalesService_Authenticate_FullMethodName {
		return ctx, nil
	}

	authed, err := h.authenticator.AuthFunc(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return authed, nil
}

func callerID(ctx context.Context) (string, error) {
	playerID, err := auth.PlayerIDFromContext(ctx)
	if err != nil {
		return "", errors.ToGRPCError(err)
	}
	return playerID, nil
}

// Authenticate issues an anonymous session token
func (h *Handler) Authenticate(ctx context.Context, req *talesv1alpha1.AuthenticateRequest) (*talesv1alpha1.AuthenticateResponse, error) {
	out, err := h.sessionService.Authenticate(ctx, &session.AuthenticateInput{Label: req.GetLabel()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.AuthenticateResponse{
		PlayerId:  out.PlayerID,
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt.Unix(),
	}, nil
}

// CreateRoom opens a room hosted by the caller
func (h *Handler) CreateRoom(ctx context.Context, req *talesv1alpha1.CreateRoomRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.CreateRoom(ctx, &session.CreateRoomInput{
		PlayerID:   playerID,
		PlayerName: req.GetPlayerName(),
		IsSolo:     req.GetIsSolo(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State), Screen: ScreenToProto(out.Screen)}, nil
}

// JoinRoom joins the caller to a room
func (h *Handler) JoinRoom(ctx context.Context, req *talesv1alpha1.JoinRoomRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.JoinRoom(ctx, &session.JoinRoomInput{
		PlayerID:   playerID,
		PlayerName: req.GetPlayerName(),
		Code:       req.GetCode(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State), Screen: ScreenToProto(out.Screen)}, nil
}

// GetRoom loads a room routed for the caller
func (h *Handler) GetRoom(ctx context.Context, req *talesv1alpha1.GetRoomRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetRoom(ctx, &session.GetRoomInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State), Screen: ScreenToProto(out.Screen)}, nil
}

// RoomExists checks a code
func (h *Handler) RoomExists(ctx context.Context, req *talesv1alpha1.RoomExistsRequest) (*talesv1alpha1.RoomExistsResponse, error) {
	out, err := h.sessionService.RoomExists(ctx, &session.RoomExistsInput{Code: req.GetCode()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomExistsResponse{Exists: out.Exists}, nil
}

// GenerateClasses invents classes for the room's theme
func (h *Handler) GenerateClasses(ctx context.Context, req *talesv1alpha1.GenerateClassesRequest) (*talesv1alpha1.GenerateClassesResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GenerateClasses(ctx, &session.GenerateClassesInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
		Theme:    req.GetTheme(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.GenerateClassesResponse{Room: RoomToProto(out.State), Classes: out.Classes}, nil
}

// ConfirmSetup finishes setup
func (h *Handler) ConfirmSetup(ctx context.Context, req *talesv1alpha1.ConfirmSetupRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.ConfirmSetup(ctx, &session.ConfirmSetupInput{
		PlayerID:    playerID,
		Code:        req.GetCode(),
		Theme:       req.GetTheme(),
		PlayerLimit: int(req.GetPlayerLimit()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State)}, nil
}

// ConfirmCharacter creates the caller's hero
func (h *Handler) ConfirmCharacter(ctx context.Context, req *talesv1alpha1.ConfirmCharacterRequest) (*talesv1alpha1.ConfirmCharacterResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.ConfirmCharacter(ctx, &session.ConfirmCharacterInput{
		PlayerID:  playerID,
		Code:      req.GetCode(),
		Name:      req.GetName(),
		Class:     req.GetClass(),
		Backstory: req.GetBackstory(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.ConfirmCharacterResponse{Room: RoomToProto(out.State), Started: out.Started}, nil
}

// StartGame starts a multiplayer adventure
func (h *Handler) StartGame(ctx context.Context, req *talesv1alpha1.StartGameRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.StartGame(ctx, &session.StartGameInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State)}, nil
}

// PerformAction submits one turn
func (h *Handler) PerformAction(ctx context.Context, req *talesv1alpha1.PerformActionRequest) (*talesv1alpha1.RoomResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
		Action:   req.GetAction(),
		Roll:     int(req.GetRoll()),
		RollText: req.GetRollText(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RoomResponse{Room: RoomToProto(out.State)}, nil
}

// GenerateSceneImage paints the current scene
func (h *Handler) GenerateSceneImage(ctx context.Context, req *talesv1alpha1.GenerateSceneImageRequest) (*talesv1alpha1.GenerateSceneImageResponse, error) {
	playerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GenerateSceneImage(ctx, &session.GenerateSceneImageInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.GenerateSceneImageResponse{Image: out.Image, Prompt: out.Prompt}, nil
}

// GetJournal lists the turns of a room
func (h *Handler) GetJournal(ctx context.Context, req *talesv1alpha1.GetJournalRequest) (*talesv1alpha1.GetJournalResponse, error) {
	out, err := h.sessionService.GetJournal(ctx, &session.GetJournalInput{
		Code:  req.GetCode(),
		Limit: int(req.GetLimit()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*talesv1alpha1.JournalEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, JournalEntryToProto(e))
	}

	return &talesv1alpha1.GetJournalResponse{Entries: entries}, nil
}

// RollD20 rolls a die on the server
func (h *Handler) RollD20(ctx context.Context, _ *talesv1alpha1.RollD20Request) (*talesv1alpha1.RollD20Response, error) {
	out, err := h.sessionService.RollD20(ctx, &session.RollD20Input{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &talesv1alpha1.RollD20Response{Roll: int32(out.Roll)}, nil
}

// WatchRoom streams routed room snapshots until the room is gone or the
// caller hangs up
func (h *Handler) WatchRoom(req *talesv1alpha1.WatchRoomRequest, stream talesv1alpha1.TalesService_WatchRoomServer) error {
	ctx := stream.Context()

	playerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	out, err := h.sessionService.WatchRoom(ctx, &session.WatchRoomInput{
		PlayerID: playerID,
		Code:     req.GetCode(),
	})
	if err != nil {
		return errors.ToGRPCError(err)
	}

	for update := range out.Updates {
		msg := &talesv1alpha1.RoomUpdate{
			Room:   RoomToProto(update.State),
			Screen: ScreenToProto(update.Screen),
			Gone:   update.Gone,
		}
		if err := stream.Send(msg); err != nil {
			slog.Debug("watch stream closed", "code", req.GetCode(), "player_id", playerID, "error", err)
			return err
		}
	}

	return nil
}
