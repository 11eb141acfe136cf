package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLineRespectsQuotes(t *testing.T) {
	words, err := splitLine(`createCampaign "Spring Drive" --location 'City Hall'`)

	require.NoError(t, err)
	assert.Equal(t, []string{"createCampaign", "Spring Drive", "--location", "City Hall"}, words)
}

func TestSplitLineKeepsEmptyQuotedWord(t *testing.T) {
	words, err := splitLine(`updateBlog blog-1 --excerpt ""`)

	require.NoError(t, err)
	assert.Equal(t, []string{"updateBlog", "blog-1", "--excerpt", ""}, words)
}

func TestSplitLineRejectsUnterminatedQuote(t *testing.T) {
	_, err := splitLine(`createCampaign "Spring Drive`)
	assert.Error(t, err)
}

func TestDispatchResetsFlagsBetweenLines(t *testing.T) {
	var gotPage int
	cmd := &cobra.Command{
		Use:  "pager",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gotPage, _ = cmd.Flags().GetInt("page")
			return nil
		},
	}
	cmd.Flags().Int("page", 1, "")

	require.NoError(t, dispatch(cmd, []string{"--page", "7"}))
	assert.Equal(t, 7, gotPage)

	// A second line without the flag must see the default again.
	require.NoError(t, dispatch(cmd, nil))
	assert.Equal(t, 1, gotPage)
}
