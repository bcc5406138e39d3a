// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-item-keeper/internal/adapter"
	"github.com/MKhiriev/go-item-keeper/models"
)

const usage = `usage: client [-a address] [-timeout d] [-token t] <command>

commands:
  version
  health
  register <username> <password>
  login <username> <password>
  profile
  item create -name <name> -description <description>
  item list
  item update <id> [-name <name>] [-description <description>]
  item delete <id>

register and login print the access token; pass it with -token or
ADAPTER_TOKEN to the commands that need authentication.`

var errUsage = errors.New(usage)

// run executes one command against the API and writes its result to out.
func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "version":
		printBuildInfo()
		return nil
	case "health":
		if err := a.Health(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "ok")
		return err
	case "register":
		return authenticate(ctx, a.Register, rest, out)
	case "login":
		return authenticate(ctx, a.Login, rest, out)
	case "profile":
		message, err := a.Profile(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, message)
		return err
	case "item":
		return runItem(ctx, a, rest, out)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

type authFunc func(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

func authenticate(ctx context.Context, call authFunc, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errUsage
	}

	token, err := call(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token.AccessToken)
	return err
}

func runItem(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "create":
		fs := flag.NewFlagSet("item create", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		name := fs.String("name", "", "item name")
		description := fs.String("description", "", "item description")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w\n%w", err, errUsage)
		}

		item, err := a.CreateItem(ctx, models.ItemCreateRequest{
			Name:        flagValue(fs, "name", *name),
			Description: flagValue(fs, "description", *description),
		})
		if err != nil {
			return err
		}
		return printJSON(out, item)

	case "list":
		items, err := a.ListItems(ctx)
		if errors.Is(err, adapter.ErrNotFound) {
			items, err = []models.Item{}, nil
		}
		if err != nil {
			return err
		}
		return printJSON(out, items)

	case "update":
		if len(rest) == 0 {
			return errUsage
		}
		itemID := rest[0]

		fs := flag.NewFlagSet("item update", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		name := fs.String("name", "", "new item name")
		description := fs.String("description", "", "new item description")
		if err := fs.Parse(rest[1:]); err != nil {
			return fmt.Errorf("%w\n%w", err, errUsage)
		}

		item, err := a.UpdateItem(ctx, itemID, models.ItemUpdateRequest{
			Name:        flagValue(fs, "name", *name),
			Description: flagValue(fs, "description", *description),
		})
		if err != nil {
			return err
		}
		return printJSON(out, item)

	case "delete":
		if len(rest) != 1 {
			return errUsage
		}
		if err := a.DeleteItem(ctx, rest[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "deleted %s\n", rest[0])
		return err

	default:
		return fmt.Errorf("unknown item command %q\n%w", sub, errUsage)
	}
}

// flagValue returns nil for a flag that was not given on the command line,
// so the server sees the field as absent.
func flagValue(fs *flag.FlagSet, name, value string) *string {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return &value
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
