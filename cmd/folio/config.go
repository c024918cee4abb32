package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versbook/folio/internal/api"
	"github.com/versbook/folio/internal/config"
	"github.com/versbook/folio/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() {
			return fmt.Errorf("config already exists at %s", h.ConfigPath())
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Println("Wrote:", h.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		return api.Output(cm.Get())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
