package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier шлет администратору сайта уведомление о новом
// заказе. Без токена или chat_id работает как заглушка.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderPlaced(ctx context.Context, order *domain.Order) {
	var b strings.Builder
	fmt.Fprintf(&b, "*New order %s*\n\nCustomer: %s\nPhone: %s\n", order.ID, order.Name, order.Phone)
	for _, line := range order.Lessons {
		fmt.Fprintf(&b, "Lesson %s x%d\n", line.LessonID, line.Quantity)
	}

	n.send(ctx, b.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.adminChatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
