package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/urfave/cli.v1"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/genesis"
	"github.com/eigerco/ore/internal/processor"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/sysvar"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "addresses",
			Usage:  "print the program's singleton addresses",
			Action: printAddresses,
		},
		{
			Name:   "genesis",
			Usage:  "create the singleton accounts of a new ledger",
			Action: withLedger(initLedger),
		},
		{
			Name:  "beacon",
			Usage: "record a new slot hash in the randomness beacon",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "slot", Usage: "slot number, defaults to the one after the freshest entry"},
				cli.StringFlag{Name: "hash", Usage: "hex encoded 32 byte hash, random if empty"},
			},
			Action: withLedger(recordSlot),
		},
		{
			Name:      "token-account",
			Usage:     "open the associated token account of an owner",
			ArgsUsage: "<owner>",
			Action:    withLedger(openTokenAccount),
		},
		{
			Name:      "register",
			Usage:     "create the proof account of a miner",
			ArgsUsage: "<signer>",
			Action:    withLedger(registerMiner),
		},
		{
			Name:      "claim",
			Usage:     "claim rewards from a proof into a token account",
			ArgsUsage: "<signer> <beneficiary> <amount>",
			Action:    withLedger(claimRewards),
		},
		{
			Name:      "proof",
			Usage:     "show the proof of a miner",
			ArgsUsage: "<authority>",
			Action:    withLedger(showProof),
		},
		{
			Name:   "proofs",
			Usage:  "list every proof in the ledger",
			Action: withLedger(listProofs),
		},
	}
}

func addressArg(c *cli.Context, i int, name string) (address.Address, error) {
	s := c.Args().Get(i)
	if s == "" {
		return address.Address{}, fmt.Errorf("missing %s", name)
	}
	a, err := address.FromBase58(s)
	if err != nil {
		return address.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func printAddresses(c *cli.Context) error {
	s := constants.Singletons()
	w := c.App.Writer
	row := func(name string, d constants.Derived) {
		fmt.Fprintf(w, "%-16s %s (bump %d)\n", name, d.Address, d.Bump)
	}
	fmt.Fprintf(w, "%-16s %s\n", "program", constants.ProgramID)
	row("config", s.Config)
	row("treasury", s.Treasury)
	row("treasury tokens", s.TreasuryTokens)
	row("mint", s.Mint)
	row("metadata", s.Metadata)
	for i, b := range s.Buses {
		row(fmt.Sprintf("bus %d", i), b)
	}
	return nil
}

func initLedger(c *cli.Context, l *ledger) error {
	opts := genesis.Options{
		Admin: l.cfg.GenesisAdmin,
		Now:   sysvar.SystemClock{}.UnixTimestamp(),
	}
	if err := genesis.Initialize(l.accounts, opts); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "ledger initialized")
	return nil
}

func recordSlot(c *cli.Context, l *ledger) error {
	slot := c.Uint64("slot")
	if slot == 0 {
		acct, err := l.accounts.GetAccount(constants.SlotHashesSysvarID)
		if err != nil {
			return err
		}
		slot = 1
		if !acct.IsEmpty() {
			if head, err := sysvar.FreshestFromAccount(acct.Data); err == nil {
				slot = head.Slot + 1
			}
		}
	}

	var hash [32]byte
	if h := c.String("hash"); h != "" {
		b, err := hex.DecodeString(h)
		if err != nil || len(b) != len(hash) {
			return fmt.Errorf("hash must be %d hex encoded bytes", len(hash))
		}
		copy(hash[:], b)
	} else if _, err := rand.Read(hash[:]); err != nil {
		return err
	}

	if err := l.executor.RecordSlotHash(slot, hash); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "slot %d %x\n", slot, hash)
	return nil
}

func openTokenAccount(c *cli.Context, l *ledger) error {
	owner, err := addressArg(c, 0, "owner")
	if err != nil {
		return err
	}
	addr, err := genesis.OpenTokenAccount(l.accounts, owner)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, addr)
	return nil
}

func execute(c *cli.Context, l *ledger, ix runtime.Instruction) error {
	receipt, err := l.executor.Execute(context.Background(), ix)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "committed %d accounts, digest %x\n", len(receipt.Written), receipt.Digest)
	return nil
}

func registerMiner(c *cli.Context, l *ledger) error {
	signer, err := addressArg(c, 0, "signer")
	if err != nil {
		return err
	}
	ix, err := processor.NewRegisterInstruction(signer)
	if err != nil {
		return err
	}
	if err := execute(c, l, ix); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "proof %s\n", ix.Accounts[1].Address)
	return nil
}

func claimRewards(c *cli.Context, l *ledger) error {
	signer, err := addressArg(c, 0, "signer")
	if err != nil {
		return err
	}
	beneficiary, err := addressArg(c, 1, "beneficiary")
	if err != nil {
		return err
	}
	amount, err := strconv.ParseUint(c.Args().Get(2), 10, 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	ix, err := processor.NewClaimInstruction(signer, beneficiary, amount)
	if err != nil {
		return err
	}
	return execute(c, l, ix)
}

func showProof(c *cli.Context, l *ledger) error {
	authority, err := addressArg(c, 0, "authority")
	if err != nil {
		return err
	}
	addr, _, err := address.FindProgramAddress(constants.ProofSeeds(authority), constants.ProgramID)
	if err != nil {
		return err
	}
	acct, err := l.accounts.GetAccount(addr)
	if err != nil {
		return err
	}
	if acct.IsEmpty() {
		return fmt.Errorf("no proof for %s", authority)
	}
	p, err := state.DecodeProof(acct.Data)
	if err != nil {
		return err
	}
	writeProof(c.App.Writer, addr, p)
	return nil
}

func listProofs(c *cli.Context, l *ledger) error {
	return l.accounts.ForEachOwned(constants.ProgramID, func(addr address.Address, a store.Account) error {
		if d, ok := state.DiscriminatorOf(a.Data); !ok || d != state.DiscriminatorProof {
			return nil
		}
		p, err := state.DecodeProof(a.Data)
		if err != nil {
			return fmt.Errorf("proof %s: %w", addr, err)
		}
		writeProof(c.App.Writer, addr, p)
		return nil
	})
}

func writeProof(w io.Writer, addr address.Address, p state.Proof) {
	fmt.Fprintf(w, "%s\n", addr)
	fmt.Fprintf(w, "  authority      %s\n", p.Authority)
	fmt.Fprintf(w, "  balance        %d\n", p.Balance)
	fmt.Fprintf(w, "  challenge      %x\n", p.Challenge)
	fmt.Fprintf(w, "  last hash at   %d\n", p.LastHashAt)
	fmt.Fprintf(w, "  last claim at  %d\n", p.LastClaimAt)
	fmt.Fprintf(w, "  total hashes   %d\n", p.TotalHashes)
	fmt.Fprintf(w, "  total rewards  %d\n", p.TotalRewards)
}
