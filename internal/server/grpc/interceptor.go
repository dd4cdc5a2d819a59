package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lockify/internal/common"
	pb "github.com/dmitrijs2005/lockify/internal/proto"
	"github.com/dmitrijs2005/lockify/internal/server/access"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require a valid bearer token.
var protectedMethods = map[string]struct{}{
	pb.AuthService_Profile_FullMethodName: {},
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// loggingInterceptor tags the call with a request id, echoes it in the
// response header and logs method, status code and duration.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	requestID := firstMetadata(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	// fails only outside a real stream (unit tests)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

// accessInterceptor runs the access gate in front of protected methods and
// hands the resolved principal to the handler through the context.
func (s *GRPCServer) accessInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	token := access.BearerToken(firstMetadata(ctx, common.AuthorizationHeaderName))

	principal, err := s.gate.Authorize(ctx, token)
	if err != nil {
		s.logger.Info(ctx, "access denied", "method", info.FullMethod, "reason", err.Error())
		return nil, s.toStatus(ctx, err)
	}

	return handler(access.ContextWithPrincipal(ctx, principal), req)
}
