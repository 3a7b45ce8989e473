package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/mikey/restyle/internal/core"
	"github.com/mikey/restyle/internal/di"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sendFunc func(ctx context.Context, s *core.NotificationSender, recipient, link, name string) (*core.DeliveryReceipt, error)

func newSendVerificationCommand(flags *di.CLIFlags) *cobra.Command {
	return newSendCommand(flags, "send-verification", "Send the verify-email message",
		func(ctx context.Context, s *core.NotificationSender, recipient, link, name string) (*core.DeliveryReceipt, error) {
			return s.SendVerification(ctx, recipient, link, name)
		})
}

func newSendResetCommand(flags *di.CLIFlags) *cobra.Command {
	return newSendCommand(flags, "send-reset", "Send the reset-password message",
		func(ctx context.Context, s *core.NotificationSender, recipient, link, name string) (*core.DeliveryReceipt, error) {
			return s.SendPasswordReset(ctx, recipient, link, name)
		})
}

func newSendCommand(flags *di.CLIFlags, use, short string, send sendFunc) *cobra.Command {
	var to, link, name string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			container, err := di.BuildCLIContainer(ctx, flags)
			if err != nil {
				return err
			}

			return container.Invoke(func(sender *core.NotificationSender, logger *zap.Logger) error {
				defer logger.Sync()

				receipt, err := send(ctx, sender, to, link, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "accepted=%t status=%d provider=%s id=%s\n",
					receipt.Accepted, receipt.StatusCode, receipt.Provider, receipt.MessageID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient email address")
	cmd.Flags().StringVar(&link, "link", "", "Link embedded in the message")
	cmd.Flags().StringVar(&name, "name", "", "Recipient display name")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}

func newTransformCommand(flags *di.CLIFlags) *cobra.Command {
	var image, hairstyle, hairColor, output string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a hairstyle to a portrait",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readImageInput(image)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			container, err := di.BuildCLIContainer(ctx, flags)
			if err != nil {
				return err
			}

			return container.Invoke(func(transformer *core.ImageTransformer, logger *zap.Logger) error {
				defer logger.Sync()

				result, err := transformer.Transform(ctx, &core.TransformRequest{
					Image:   input,
					Options: core.StyleOptions{Hairstyle: hairstyle, HairColor: hairColor},
				})
				if err != nil {
					return err
				}

				path := outputPath(output, result.Image.MIMEType)
				if err := os.WriteFile(path, result.Image.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write output image: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes) via %s\n",
					path, result.Image.MIMEType, len(result.Image.Data), result.Provider)
				if result.Text != "" {
					fmt.Fprintln(cmd.OutOrStdout(), result.Text)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Source image file or data URI")
	cmd.Flags().StringVar(&hairstyle, "hairstyle", "", "Requested hairstyle")
	cmd.Flags().StringVar(&hairColor, "hair-color", "", "Requested hair color")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (extension derived from the image type when empty)")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

// readImageInput returns data URIs unchanged and turns a file into a data URI
func readImageInput(image string) (string, error) {
	if strings.HasPrefix(image, "data:") {
		return image, nil
	}

	data, err := os.ReadFile(image)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	mimeType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

func outputPath(output, mimeType string) string {
	if output != "" {
		return output
	}
	switch mimeType {
	case "image/jpeg":
		return "restyled.jpg"
	case "image/webp":
		return "restyled.webp"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 && mimeType != "image/png" {
		return "restyled" + exts[0]
	}
	return "restyled.png"
}
