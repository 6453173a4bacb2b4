package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

const ideasJSON = `{
  "quickWins": [{"title": "Referral bonus", "description": "Give credit", "timeline": "1 week", "difficulty": "low"}],
  "campaigns": [{"name": "Roast-off", "concept": "Live event", "execution": "Pop-up stalls", "impact": "buzz", "creativity": "high"}],
  "contentIdeas": [{"type": "video", "description": "Origin story", "platform": "tiktok"}],
  "implementationTips": ["start small"]
}`

func TestGenerationService_UsesDefaultModelForDirectCalls(t *testing.T) {
	client := newFakeClient().
		on("flash", fakeReply{Text: personaJSON}, fakeReply{Text: "Looks good"}, fakeReply{Text: "Sure"})
	svc := NewGenerationService(NewModelAccess(client, testRouting))
	ctx := context.Background()

	persona, err := svc.GeneratePersona(ctx, domain.Fields{"industry": "coffee"})
	require.NoError(t, err)
	assert.Equal(t, "Maya Chen", persona.Name)

	feedback, err := svc.PersonaAdFeedback(ctx, domain.Fields{"adContent": "Buy now"})
	require.NoError(t, err)
	assert.Equal(t, "Looks good", feedback)

	reply, err := svc.PersonaChat(ctx, domain.Fields{"message": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Sure", reply)

	assert.Equal(t, []string{"flash", "flash", "flash"}, client.models())
	assert.Equal(t, "persona", client.calls[0].Schema)
	assert.Contains(t, client.calls[0].Prompt, "for a coffee business")
	assert.Empty(t, client.calls[1].Schema)
}

func TestGenerationService_DirectCallsDoNotFallBack(t *testing.T) {
	client := newFakeClient().on("flash", fakeReply{Err: errors.New("quota exceeded")})
	svc := NewGenerationService(NewModelAccess(client, testRouting))

	_, err := svc.PersonaChat(context.Background(), domain.Fields{})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindRateLimited, domain.KindOf(err))
	assert.Equal(t, []string{"flash"}, client.models())
}

func TestGenerationService_GenerateIdeasFallsBack(t *testing.T) {
	client := newFakeClient().
		on("pro", fakeReply{Err: errors.New("Resource has been exhausted (e.g. check quota).")}).
		on("lite", fakeReply{Text: ideasJSON})
	svc := NewGenerationService(NewModelAccess(client, testRouting))

	ideas, err := svc.GenerateIdeas(context.Background(), domain.Fields{"business": "roastery"})

	require.NoError(t, err)
	require.Len(t, ideas.QuickWins, 1)
	assert.Equal(t, "Referral bonus", ideas.QuickWins[0].Title)
	assert.Equal(t, []string{"pro", "lite"}, client.models())
	assert.Equal(t, "ideas", client.calls[1].Schema)
}

func TestGenerationService_GenerateContent(t *testing.T) {
	client := newFakeClient().on("pro", fakeReply{Text: "Fresh beans, every week."})
	svc := NewGenerationService(NewModelAccess(client, testRouting))

	content, err := svc.GenerateContent(context.Background(), domain.Fields{"contentType": "newsletter", "topic": "beans"})

	require.NoError(t, err)
	assert.Equal(t, "Fresh beans, every week.", content)
	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].Prompt, `Write engaging newsletter content about "beans".`)
}

func TestGenerationService_InvalidEnumIsSchemaFailure(t *testing.T) {
	bad := `{"quickWins": [{"title": "t", "description": "d", "timeline": "now", "difficulty": "tiny"}],
"campaigns": [], "contentIdeas": [], "implementationTips": []}`
	client := newFakeClient().on("pro", fakeReply{Text: bad})
	svc := NewGenerationService(NewModelAccess(client, testRouting))

	_, err := svc.GenerateIdeas(context.Background(), domain.Fields{})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindOther, domain.KindOf(err))
	assert.Equal(t, []string{"pro"}, client.models())
}
