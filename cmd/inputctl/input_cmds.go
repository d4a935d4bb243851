package main

import (
	"fmt"
	"strconv"

	"github.com/frudas24/inputkit/internal/wininput"
	"github.com/spf13/cobra"
)

// posCmd prints the cursor position.
func (c *cli) posCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pos",
		Short: "Print the current cursor position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inj, err := c.injector()
			if err != nil {
				return err
			}
			x, y, err := inj.CursorPos()
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%d %d\n", x, y)
			return nil
		},
	}
}

// moveCmd sets the cursor position.
func (c *cli) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move X Y",
		Short:   "Move the cursor to absolute screen coordinates",
		Example: "  inputctl move 200 300\n  inputctl move -- -1280 40",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseCoords(args)
			if err != nil {
				return err
			}
			inj, err := c.injector()
			if err != nil {
				return err
			}
			c.warnOffscreen(x, y)
			return inj.SetCursorPos(x, y)
		},
	}
}

// clickCmd clicks a mouse button.
func (c *cli) clickCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "click [left|right]",
		Short:     "Press and release a mouse button (default left)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"left", "right"},
		RunE: func(cmd *cobra.Command, args []string) error {
			button := wininput.MouseLeft
			if len(args) == 1 {
				b, err := wininput.ParseMouseButton(args[0])
				if err != nil {
					return err
				}
				button = b
			}
			inj, err := c.injector()
			if err != nil {
				return err
			}
			return inj.ClickMouseButton(button)
		},
	}
}

// dragCmd drags with the left button from the current position.
func (c *cli) dragCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drag X Y",
		Short: "Drag with the left button from the cursor to X Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseCoords(args)
			if err != nil {
				return err
			}
			inj, err := c.injector()
			if err != nil {
				return err
			}
			c.warnOffscreen(x, y)
			return inj.DragAndDrop(x, y)
		},
	}
}

// keyCmd presses and releases a key.
func (c *cli) keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "key KEY",
		Short:   "Press and release a key by name or virtual-key code",
		Example: "  inputctl key enter\n  inputctl key 0x41",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vk, err := wininput.ParseKey(args[0])
			if err != nil {
				return err
			}
			inj, err := c.injector()
			if err != nil {
				return err
			}
			return inj.PressKey(vk)
		},
	}
}

// parseCoords parses two signed integer arguments.
func parseCoords(args []string) (int, int, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("x must be an integer: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("y must be an integer: %w", err)
	}
	return x, y, nil
}
