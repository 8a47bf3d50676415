package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/host"
	"github.com/solquad/token-ledger/instruction"
	"github.com/solquad/token-ledger/ledger"
	"github.com/solquad/token-ledger/store"
)

func main() {
	var (
		dbDir       = flag.String("db", "", "Path to the ledger store directory")
		ledgerID    = flag.String("ledger", "token", "Ledger identity within the store")
		op          = flag.String("op", "", "Operation: init, transfer, balance, approve")
		owner       = flag.String("owner", "", "Owner account (64-char hex, or a name to derive from)")
		from        = flag.String("from", "", "Transfer sender account")
		to          = flag.String("to", "", "Transfer recipient account")
		account     = flag.String("account", "", "Account to query the balance of")
		spender     = flag.String("spender", "", "Approve spender account")
		supply      = flag.Uint64("supply", 0, "Total supply for init")
		amount      = flag.Uint64("amount", 0, "Amount for transfer or approve")
		verbose     = flag.Bool("v", false, "Log invocation traces to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *dbDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: ledger -db <dir> -op init -owner <account> -supply <n>")
		fmt.Fprintln(os.Stderr, "       ledger -db <dir> -op transfer -from <account> -to <account> -amount <n>")
		fmt.Fprintln(os.Stderr, "       ledger -db <dir> -op balance -account <account>")
		fmt.Fprintln(os.Stderr, "       ledger -db <dir> -op approve -owner <account> -spender <account> -amount <n>")
		fmt.Fprintln(os.Stderr, "       ledger -db <dir> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		ledger.SetLogger(logger)
		host.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*dbDir, *ledgerID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err := run(*dbDir, *ledgerID, *op, accountArgs{
		owner:   *owner,
		from:    *from,
		to:      *to,
		account: *account,
		spender: *spender,
	}, *supply, *amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type accountArgs struct {
	owner   string
	from    string
	to      string
	account string
	spender string
}

func run(dbDir, ledgerID, op string, args accountArgs, supply, amount uint64) error {
	st, err := store.Open(dbDir)
	if err != nil {
		return err
	}
	defer st.Close()

	p := host.NewProcessor(st)

	switch op {
	case "init":
		owner, err := parseAccount(args.owner, "-owner")
		if err != nil {
			return err
		}
		err = p.Process(host.Invocation{
			LedgerID: ledgerID,
			Accounts: []tokenledger.AccountID{owner},
			Data:     instruction.Encode(instruction.Initialize{TotalSupply: supply}),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Initialized %q: supply %d minted to %s\n", ledgerID, supply, owner.Short())

	case "transfer":
		sender, err := parseAccount(args.from, "-from")
		if err != nil {
			return err
		}
		recipient, err := parseAccount(args.to, "-to")
		if err != nil {
			return err
		}
		err = p.Process(host.Invocation{
			LedgerID: ledgerID,
			Accounts: []tokenledger.AccountID{sender, recipient},
			Data:     instruction.Encode(instruction.Transfer{Amount: amount}),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Transferred %d: %s -> %s\n", amount, sender.Short(), recipient.Short())

	case "balance":
		account, err := parseAccount(args.account, "-account")
		if err != nil {
			return err
		}
		err = p.Process(host.Invocation{
			LedgerID: ledgerID,
			Accounts: []tokenledger.AccountID{account},
			Data:     instruction.Encode(instruction.GetBalance{}),
		})
		if err != nil {
			return err
		}
		state, err := st.Load(ledgerID)
		if err != nil {
			return err
		}
		fmt.Printf("Balance of %s: %d\n", account.Short(), state.Balance(account))

	case "approve":
		owner, err := parseAccount(args.owner, "-owner")
		if err != nil {
			return err
		}
		spender, err := parseAccount(args.spender, "-spender")
		if err != nil {
			return err
		}
		err = p.Process(host.Invocation{
			LedgerID: ledgerID,
			Accounts: []tokenledger.AccountID{owner},
			Data:     instruction.Encode(instruction.Approve{Spender: spender, Amount: amount}),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Approved %s to spend %d on behalf of %s\n", spender.Short(), amount, owner.Short())

	default:
		return fmt.Errorf("unknown operation %q (want init, transfer, balance, or approve)", op)
	}

	return nil
}

// parseAccount accepts a full 64-character hex identifier or derives a
// stable identifier from any other non-empty string.
func parseAccount(s, flagName string) (tokenledger.AccountID, error) {
	if s == "" {
		return tokenledger.ZeroAccount, fmt.Errorf("missing %s", flagName)
	}
	if len(s) == 2*tokenledger.AccountIDSize {
		return tokenledger.ParseAccountID(s)
	}
	return tokenledger.DeriveAccountID(s), nil
}
