package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestDescriptor_MatchesServiceDesc(t *testing.T) {
	require.NotNil(t, File_lockify_v1_auth_proto)
	assert.Equal(t, protoreflect.FullName("lockify.v1"), File_lockify_v1_auth_proto.Package())

	svc := File_lockify_v1_auth_proto.Services().ByName("AuthService")
	require.NotNil(t, svc)
	assert.Equal(t, AuthService_ServiceDesc.ServiceName, string(svc.FullName()))
	require.Equal(t, len(AuthService_ServiceDesc.Methods), svc.Methods().Len())

	for _, m := range AuthService_ServiceDesc.Methods {
		md := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		if md == nil {
			t.Fatalf("method %s missing from descriptor", m.MethodName)
		}
	}

	profile := svc.Methods().ByName("Profile")
	assert.Equal(t, protoreflect.FullName("google.protobuf.Empty"), profile.Input().FullName())
	assert.Equal(t, protoreflect.FullName("lockify.v1.ProfileResponse"), profile.Output().FullName())
}

func TestMessages_DefaultCodecRoundTrip(t *testing.T) {
	codec := encoding.GetCodecV2("proto")
	require.NotNil(t, codec)

	in := &ListUsersResponse{Users: []*User{
		{Id: "1", Email: "a@x", Role: "user"},
		{Id: "2", Email: "b@x", Role: "user"},
	}}
	buf, err := codec.Marshal(in)
	require.NoError(t, err)

	out := &ListUsersResponse{}
	require.NoError(t, codec.Unmarshal(buf, out))
	assert.True(t, gproto.Equal(in, out), "got %v", out)

	v := &VerifyTokenResponse{Valid: true, UserId: "7", Email: "c@x", Role: "user", ExpiresAt: 1700000000}
	b, err := gproto.Marshal(v)
	require.NoError(t, err)
	got := &VerifyTokenResponse{}
	require.NoError(t, gproto.Unmarshal(b, got))
	assert.Equal(t, "7", got.GetUserId())
	assert.Equal(t, int64(1700000000), got.GetExpiresAt())
}

func TestNilGetters(t *testing.T) {
	var u *User
	var l *LoginResponse
	var p *PingResponse
	var v *VerifyTokenResponse

	assert.Empty(t, u.GetId())
	assert.Empty(t, u.GetEmail())
	assert.Empty(t, u.GetRole())
	assert.Empty(t, l.GetToken())
	assert.Nil(t, l.GetUser())
	assert.Empty(t, p.GetStatus())
	assert.False(t, v.GetValid())
}
