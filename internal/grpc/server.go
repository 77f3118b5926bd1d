package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/supportly-beer/supportly-backend/internal/chat"
	"github.com/supportly-beer/supportly-backend/pkg/log"
	chatpb "github.com/supportly-beer/supportly-backend/proto/chat"
)

// chatServer exposes the room registry over gRPC.
type chatServer struct {
	chatpb.UnimplementedChatServiceServer
	registry *chat.Registry
}

// JoinRoom attaches the caller to the ticket's room and streams the
// transcript followed by live messages until the client disconnects,
// leaves, or is replaced by a newer join.
func (s *chatServer) JoinRoom(req *chatpb.JoinRoomRequest, stream chatpb.ChatService_JoinRoomServer) error {
	ctx := stream.Context()
	roomID := req.GetRoomId()
	userID := req.GetUserId()

	out := newStreamOutlet()

	// The pump runs for the whole lifetime of the stream; starting it
	// before Join lets the transcript replay drain as it is pushed.
	pumped := make(chan error, 1)
	go func() {
		pumped <- out.pump(ctx, stream)
	}()

	if err := s.registry.Join(ctx, roomID, userID, out); err != nil {
		// Join closed the outlet, so the pump flushes and exits.
		<-pumped
		switch {
		case errors.Is(err, chat.ErrTicketNotFound):
			return status.Error(codes.NotFound, "no such ticket")
		case errors.Is(err, chat.ErrEmptyRoomID), errors.Is(err, chat.ErrNilOutlet):
			return status.Error(codes.InvalidArgument, err.Error())
		default:
			return status.Error(codes.Internal, "failed to join room")
		}
	}
	out.settle()
	defer s.registry.LeaveOutlet(ctx, roomID, userID, out)

	return <-pumped
}

// SendMessage stamps the message and hands it to the registry. The call
// acknowledges regardless of whether a live room consumed the message.
func (s *chatServer) SendMessage(ctx context.Context, msg *chatpb.ChatMessage) (*chatpb.Ack, error) {
	if msg.GetRoomId() == "" {
		return nil, status.Error(codes.InvalidArgument, "room_id is required")
	}
	if msg.GetTimestamp() == 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}

	if err := s.registry.Send(ctx, msg); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str(log.FieldRoomID, msg.GetRoomId()).
			Msg("send completed with persistence error")
	}
	return &chatpb.Ack{}, nil
}

// LeaveRoom detaches the user from the room. Idempotent.
func (s *chatServer) LeaveRoom(ctx context.Context, req *chatpb.LeaveRoomRequest) (*chatpb.Ack, error) {
	if req.GetRoomId() == "" {
		return nil, status.Error(codes.InvalidArgument, "room_id is required")
	}
	s.registry.Leave(ctx, req.GetRoomId(), req.GetUserId())
	return &chatpb.Ack{}, nil
}

// StartGRPCServer starts the chat gRPC server on addr. The returned
// server is stopped by the caller on shutdown.
func StartGRPCServer(addr string, registry *chat.Registry, logger *zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(log.UnaryServerInterceptor(logger)),
		grpc.StreamInterceptor(log.StreamServerInterceptor(logger)),
	)
	chatpb.RegisterChatServiceServer(s, &chatServer{registry: registry})

	go func() {
		l := log.L()
		l.Info().Str("address", addr).Msg("chat grpc server listening")
		if err := s.Serve(lis); err != nil {
			l.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
