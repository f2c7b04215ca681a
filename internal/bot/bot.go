// Package bot is the chat front end: it parses commands into ledger and
// export calls and renders replies. All validation messages live here; the
// ledger below only ever sees well-formed requests or returns typed domain
// errors that get translated into guidance for the user.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/AlexCode404/tg-fin-bot-1/internal/export"
	"github.com/AlexCode404/tg-fin-bot-1/internal/log"
	"github.com/AlexCode404/tg-fin-bot-1/internal/services"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	ledger   *services.LedgerService
	exporter *export.Exporter
	logger   *log.Logger
}

func New(token string, ledger *services.LedgerService, exporter *export.Exporter, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		ledger:   ledger,
		exporter: exporter,
		logger:   logger,
	}, nil
}

// Run polls for updates until ctx is cancelled. Each command runs as one
// synchronous pipeline; the store below is the only shared state.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Update loop started", "bot_username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	b.logger.DebugContext(ctx, "Command received",
		log.FieldCommand, msg.Command(),
		log.FieldUserID, msg.From.ID)

	switch msg.Command() {
	case "start":
		b.reply(msg, startText)
	case "help":
		b.reply(msg, helpText)
	case "add":
		b.handleAdd(ctx, msg)
	case "stats":
		b.handleStats(ctx, msg)
	case "categories":
		b.handleCategories(ctx, msg)
	case "export":
		b.handleExport(ctx, msg)
	default:
		b.reply(msg, "Unknown command. Try /help.")
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("Failed to send reply",
			log.FieldUserID, msg.From.ID,
			log.FieldError, err)
	}
}

func (b *Bot) replyDocument(msg *tgbotapi.Message, path, caption string) {
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FilePath(path))
	doc.Caption = caption
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("Failed to send document",
			log.FieldUserID, msg.From.ID,
			log.FieldPath, path,
			log.FieldError, err)
	}
}
