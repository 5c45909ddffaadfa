package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/slackmsg/pkg/domain/model"
)

func TestSlackConfig(t *testing.T) {
	t.Run("ToSlackMessage copies display options", func(t *testing.T) {
		cfg := model.SlackConfig{
			Channel:       "#ops",
			Color:         "warning",
			IconEmoji:     "bell",
			IconURL:       "https://example.com/bell.png",
			UserName:      "alert-bot",
			LinkNames:     true,
			CustomMessage: "Check the dashboard",
		}

		msg := cfg.ToSlackMessage("Stream triggered", []string{"line 1", "line 2"})
		gt.Equal(t, msg.Channel, "#ops")
		gt.Equal(t, msg.Color, "warning")
		gt.Equal(t, msg.IconEmoji, "bell")
		gt.Equal(t, msg.IconURL, "https://example.com/bell.png")
		gt.Equal(t, msg.UserName, "alert-bot")
		gt.True(t, msg.LinkNames)
		gt.Equal(t, msg.Message, "Stream triggered")
		gt.Equal(t, msg.CustomMessage, "Check the dashboard")
		gt.Equal(t, len(msg.BacklogItems), 2)
	})

	t.Run("ExpandEnv replaces variables", func(t *testing.T) {
		t.Setenv("SLACKMSG_TEST_CHANNEL", "#from-env")

		cfg := model.SlackConfig{
			Channel:  "${SLACKMSG_TEST_CHANNEL}",
			UserName: "bot-$SLACKMSG_TEST_CHANNEL",
			Color:    "good",
		}
		cfg.ExpandEnv()

		gt.Equal(t, cfg.Channel, "#from-env")
		gt.Equal(t, cfg.UserName, "bot-#from-env")
		gt.Equal(t, cfg.Color, "good")
	})

	t.Run("ExpandEnv keeps dollar signs in message text", func(t *testing.T) {
		t.Setenv("SLACKMSG_TEST_CHANNEL", "#from-env")

		cfg := model.SlackConfig{
			Channel:       "$SLACKMSG_TEST_CHANNEL",
			Color:         "#FF0000",
			IconEmoji:     "moneybag",
			CustomMessage: "Budget exceeded: $100 spent, see $HOME_DASH",
		}
		cfg.ExpandEnv()

		gt.Equal(t, cfg.Channel, "#from-env")
		gt.Equal(t, cfg.Color, "#FF0000")
		gt.Equal(t, cfg.IconEmoji, "moneybag")
		gt.Equal(t, cfg.CustomMessage, "Budget exceeded: $100 spent, see $HOME_DASH")
	})
}
