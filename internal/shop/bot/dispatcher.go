package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/Mhany156/telegram-bot/internal/shop/domain"
	"github.com/shopspring/decimal"
)

// Inbound is one chat message relayed by the messaging bridge.
type Inbound struct {
	UserId int64
	Text   string
}

// Reply is one outbound message for the bridge to deliver.
type Reply struct {
	UserId int64
	Text   string
}

const usageText = `Commands:
/balance - show your balance
/stock [category] - list available stock
/buy <category> - buy one credential
/history - your past orders
/whoami - show your id`

const adminUsageText = `Admin commands:
/addstock <category> <price> <credential>
/importstock (lines of: category price credential)
/addbalance <user_id> <amount>
/setinstructions <category> <text>
/viewinstructions [category]
/delinstructions <category>`

type Dispatcher struct {
	balance      BalanceService
	credit       CreditService
	stock        StockService
	purchase     PurchaseService
	history      HistoryService
	instructions InstructionsService
	isAdmin      AdminChecker
	logger       logging.Logger
}

func NewDispatcher(
	balance BalanceService,
	credit CreditService,
	stock StockService,
	purchase PurchaseService,
	history HistoryService,
	instructions InstructionsService,
	isAdmin AdminChecker,
	logger logging.Logger,
) *Dispatcher {
	return &Dispatcher{
		balance:      balance,
		credit:       credit,
		stock:        stock,
		purchase:     purchase,
		history:      history,
		instructions: instructions,
		isAdmin:      isAdmin,
		logger:       logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg Inbound) []Reply {
	command, args, payload := parseCommand(msg.Text)

	switch command {
	case "start":
		return d.handleStart(ctx, msg)
	case "whoami":
		return d.handleWhoami(msg)
	case "balance":
		return d.handleBalance(ctx, msg)
	case "stock":
		return d.handleStock(ctx, msg, args)
	case "buy":
		return d.handleBuy(ctx, msg, args)
	case "history":
		return d.handleHistory(ctx, msg)
	case "addstock":
		return d.adminOnly(msg, func() []Reply { return d.handleAddStock(ctx, msg, args) })
	case "importstock":
		return d.adminOnly(msg, func() []Reply { return d.handleImportStock(ctx, msg, payload) })
	case "addbalance":
		return d.adminOnly(msg, func() []Reply { return d.handleAddBalance(ctx, msg, args) })
	case "setinstructions":
		return d.adminOnly(msg, func() []Reply { return d.handleSetInstructions(ctx, msg, args) })
	case "viewinstructions":
		return d.adminOnly(msg, func() []Reply { return d.handleViewInstructions(ctx, msg, args) })
	case "delinstructions":
		return d.adminOnly(msg, func() []Reply { return d.handleDelInstructions(ctx, msg, args) })
	default:
		return d.replyUsage(msg.UserId)
	}
}

// parseCommand splits "/cmd arg arg\nrest" into the lowercase command name,
// its same-line arguments and the remaining lines. A "@botname" suffix on the
// command is stripped, the way chat platforms address commands in groups.
func parseCommand(text string) (command string, args []string, payload string) {
	firstLine, rest, _ := strings.Cut(text, "\n")

	fields := strings.Fields(firstLine)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil, ""
	}

	command = strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	return command, fields[1:], rest
}

func (d *Dispatcher) adminOnly(msg Inbound, handler func() []Reply) []Reply {
	if !d.isAdmin(msg.UserId) {
		return reply(msg.UserId, "This command is for admins only.")
	}

	return handler()
}

func (d *Dispatcher) handleStart(ctx context.Context, msg Inbound) []Reply {
	if err := d.balance.RegisterUser(ctx, msg.UserId); err != nil {
		return d.errorReply(msg.UserId, err)
	}

	text := "Welcome!\n" + usageText
	if d.isAdmin(msg.UserId) {
		text += "\n\n" + adminUsageText
	}

	return reply(msg.UserId, text)
}

func (d *Dispatcher) handleWhoami(msg Inbound) []Reply {
	return reply(msg.UserId, fmt.Sprintf("Your user id: %d\nAdmin: %t", msg.UserId, d.isAdmin(msg.UserId)))
}

func (d *Dispatcher) handleBalance(ctx context.Context, msg Inbound) []Reply {
	balance, err := d.balance.GetBalance(ctx, msg.UserId)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Your balance: %s", balance))
}

func (d *Dispatcher) handleStock(ctx context.Context, msg Inbound, args []string) []Reply {
	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	summaries, err := d.stock.ListAvailable(ctx, category)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	if len(summaries) == 0 {
		return reply(msg.UserId, "No stock available right now.")
	}

	lines := make([]string, 0, len(summaries)+1)
	lines = append(lines, "Available stock:")
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("%s - %d available, from %s", s.Category, s.Available, s.MinPrice))
	}

	return reply(msg.UserId, strings.Join(lines, "\n"))
}

func (d *Dispatcher) handleBuy(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) < 1 {
		return reply(msg.UserId, "Usage: /buy <category>")
	}

	delivery, err := d.purchase.BuyItem(ctx, msg.UserId, args[0])
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	credentialText := fmt.Sprintf("Your account details:\n%s", delivery.Credential)
	if delivery.Instruction != "" {
		credentialText += "\n\n" + delivery.Instruction
	}

	return []Reply{
		{UserId: msg.UserId, Text: fmt.Sprintf("Purchase complete: %s for %s.", args[0], delivery.Price)},
		{UserId: msg.UserId, Text: credentialText},
	}
}

func (d *Dispatcher) handleHistory(ctx context.Context, msg Inbound) []Reply {
	orders, err := d.history.GetUserOrders(ctx, msg.UserId)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	if len(orders) == 0 {
		return reply(msg.UserId, "You have no orders yet.")
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, "Your orders:")
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("#%d %s - %s (%s)", o.Id, o.Category, o.PricePaid, o.CreatedAt.Format("2006-01-02 15:04")))
	}

	return reply(msg.UserId, strings.Join(lines, "\n"))
}

func (d *Dispatcher) handleAddStock(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) < 3 {
		return reply(msg.UserId, "Usage: /addstock <category> <price> <credential>")
	}

	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return reply(msg.UserId, fmt.Sprintf("Invalid price %q.", args[1]))
	}

	// the credential may contain spaces
	credential := strings.Join(args[2:], " ")

	id, err := d.stock.AddItem(ctx, args[0], price, credential)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Added stock item #%d to %s at %s.", id, args[0], price))
}

func (d *Dispatcher) handleImportStock(ctx context.Context, msg Inbound, payload string) []Reply {
	if strings.TrimSpace(payload) == "" {
		return reply(msg.UserId, "Usage: /importstock with following lines of: category price credential")
	}

	imported, failed, err := d.stock.ImportItems(ctx, payload)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Imported %d items, %d lines failed.", imported, failed))
}

func (d *Dispatcher) handleAddBalance(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) < 2 {
		return reply(msg.UserId, "Usage: /addbalance <user_id> <amount>")
	}

	userId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return reply(msg.UserId, fmt.Sprintf("Invalid user id %q.", args[0]))
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return reply(msg.UserId, fmt.Sprintf("Invalid amount %q.", args[1]))
	}

	if err := d.credit.AddBalance(ctx, userId, amount); err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Added %s to user %d.", amount, userId))
}

func (d *Dispatcher) handleSetInstructions(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) < 2 {
		return reply(msg.UserId, "Usage: /setinstructions <category> <text>")
	}

	text := strings.Join(args[1:], " ")
	if err := d.instructions.SetInstruction(ctx, args[0], text); err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Instructions saved for %s.", args[0]))
}

func (d *Dispatcher) handleViewInstructions(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) > 0 {
		text, err := d.instructions.GetInstruction(ctx, args[0])
		if err != nil {
			return d.errorReply(msg.UserId, err)
		}

		return reply(msg.UserId, fmt.Sprintf("Instructions for %s:\n%s", args[0], text))
	}

	all, err := d.instructions.GetAllInstructions(ctx)
	if err != nil {
		return d.errorReply(msg.UserId, err)
	}

	if len(all) == 0 {
		return reply(msg.UserId, "No instructions configured.")
	}

	lines := make([]string, 0, len(all))
	for _, inst := range all {
		lines = append(lines, fmt.Sprintf("%s:\n%s", inst.Category, inst.Text))
	}

	return reply(msg.UserId, strings.Join(lines, "\n\n"))
}

func (d *Dispatcher) handleDelInstructions(ctx context.Context, msg Inbound, args []string) []Reply {
	if len(args) < 1 {
		return reply(msg.UserId, "Usage: /delinstructions <category>")
	}

	if err := d.instructions.DeleteInstruction(ctx, args[0]); err != nil {
		return d.errorReply(msg.UserId, err)
	}

	return reply(msg.UserId, fmt.Sprintf("Instructions deleted for %s.", args[0]))
}

func (d *Dispatcher) replyUsage(userId int64) []Reply {
	text := usageText
	if d.isAdmin(userId) {
		text += "\n\n" + adminUsageText
	}

	return reply(userId, text)
}

func (d *Dispatcher) errorReply(userId int64, err error) []Reply {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return reply(userId, fmt.Sprintf("Invalid input: %s.", err))
	case errors.Is(err, &domain.OutOfStockError{}):
		return reply(userId, "This category is out of stock right now.")
	case errors.Is(err, &domain.InsufficientBalanceError{}), errors.Is(err, &domain.UserNotFoundError{}):
		return reply(userId, "Insufficient balance. Top up and try again.")
	case errors.Is(err, &domain.InstructionNotFoundError{}):
		return reply(userId, "No instructions configured for this category.")
	default:
		d.logger.Error("command failed", "user_id", userId, "error", err.Error())
		return reply(userId, "Something went wrong. Try again later.")
	}
}

func reply(userId int64, text string) []Reply {
	return []Reply{{UserId: userId, Text: text}}
}
