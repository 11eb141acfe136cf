package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// ListBlogsCmd creates the listBlogs command
func ListBlogsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listBlogs",
		Short: "List blog posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			status, _ := cmd.Flags().GetString("status")
			tag, _ := cmd.Flags().GetString("tag")

			result, err := services.ListBlogs(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListBlogsParams{
				Page:   page,
				Limit:  limit,
				Status: model.BlogStatus(status),
				Tag:    tag,
			})
			if err != nil {
				return fmt.Errorf("failed to list blogs: %w", err)
			}

			printHeader(fmt.Sprintf("Blog posts (%d)", result.Meta.Total))
			for _, b := range result.Data {
				tags := ""
				if len(b.Tags) > 0 {
					tags = " [" + strings.Join(b.Tags, ", ") + "]"
				}
				fmt.Printf("- %s  %s\n  %s | /%s%s\n",
					b.ID,
					truncate(b.Title, 60),
					blogStatusBadge(b.Status),
					b.Slug,
					tags,
				)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("status", "", "Filter by status (draft, published, archived)")
	cmd.Flags().String("tag", "", "Filter by tag")

	return cmd
}

// CreateBlogCmd creates the createBlog command
func CreateBlogCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createBlog <title> <content_file>",
		Short: "Create a blog post (slug derived from the title)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			excerpt, _ := cmd.Flags().GetString("excerpt")
			imageURL, _ := cmd.Flags().GetString("image")
			tags, _ := cmd.Flags().GetStringSlice("tags")

			content, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read content file: %w", err)
			}

			blog, err := services.CreateBlog(app.Ctx, app.Client, app.Cache, app.Logger, services.BlogDraft{
				Title:    args[0],
				Content:  string(content),
				Excerpt:  excerpt,
				ImageURL: imageURL,
				Tags:     tags,
				Status:   model.BlogStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to create blog: %w", err)
			}

			fmt.Printf("\n✓ Blog created: %s (slug: %s)\n", blog.ID, blog.Slug)
			return nil
		},
	}

	cmd.Flags().String("status", string(model.BlogDraft), "Post status (draft, published, archived)")
	cmd.Flags().String("excerpt", "", "Short excerpt for listings")
	cmd.Flags().String("image", "", "Cover image URL")
	cmd.Flags().StringSlice("tags", nil, "Comma-separated tags")

	return cmd
}

// UpdateBlogCmd creates the updateBlog command
func UpdateBlogCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateBlog <blog_id>",
		Short: "Edit a blog post (the slug never changes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input bloodlink.UpdateBlogInput

			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				input.Title = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := model.BlogStatus(v)
				input.Status = &status
			}
			if cmd.Flags().Changed("excerpt") {
				v, _ := cmd.Flags().GetString("excerpt")
				input.Excerpt = &v
			}
			if cmd.Flags().Changed("content-file") {
				path, _ := cmd.Flags().GetString("content-file")
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read content file: %w", err)
				}
				text := string(content)
				input.Content = &text
			}
			if cmd.Flags().Changed("tags") {
				input.Tags, _ = cmd.Flags().GetStringSlice("tags")
			}

			blog, err := services.UpdateBlog(app.Ctx, app.Client, app.Cache, app.Logger, args[0], input)
			if err != nil {
				return fmt.Errorf("failed to update blog: %w", err)
			}

			fmt.Printf("\n✓ Blog updated: %s (%s)\n", blog.ID, blogStatusBadge(blog.Status))
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("status", "", "New status (draft, published, archived)")
	cmd.Flags().String("excerpt", "", "New excerpt")
	cmd.Flags().String("content-file", "", "File with the new content")
	cmd.Flags().StringSlice("tags", nil, "New tags")

	return cmd
}

// DeleteBlogCmd creates the deleteBlog command
func DeleteBlogCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteBlog <blog_id>",
		Short: "Delete a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteBlog(app.Ctx, app.Client, app.Cache, app.Logger, args[0]); err != nil {
				return fmt.Errorf("failed to delete blog: %w", err)
			}
			fmt.Printf("\n✓ Blog %s deleted.\n", args[0])
			return nil
		},
	}
}
