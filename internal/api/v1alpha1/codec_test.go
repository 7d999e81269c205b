package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestJSONCodecRoundTrip(t *testing.T) {
	codec := encoding.GetCodec(CodecName)

	in := &RollSkillCheckRequest{
		CharacterId:  "char_1",
		Skill:        "stealth",
		Talent:       3,
		Level:        2,
		TierModifier: -1,
	}
	data, err := codec.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"character_id":"char_1"`)

	out := &RollSkillCheckRequest{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestWithCodecPrependsContentSubtype(t *testing.T) {
	opts := withCodec(nil)
	require.Len(t, opts, 1)
}
