package event_test

import (
	"testing"

	"github.com/ratel-online/uno/event"
	"github.com/stretchr/testify/require"
)

func TestChallengeResolved(t *testing.T) {
	emitters := event.NewEmitters()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitters.ChallengeResolved.AddListener(listenerOne)
	emitters.ChallengeResolved.AddListener(listenerTwo)

	payloads := []event.ChallengeResolvedPayload{
		{
			PlayerName:     "Someone",
			ChallengerName: "Somebody",
			Succeeded:      true,
		},
		{
			PlayerName:     "Somebody",
			ChallengerName: "Someone",
			Succeeded:      false,
		},
	}

	for _, payload := range payloads {
		emitters.ChallengeResolved.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
