// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/campaignhq/campaign-service/cmd"

func main() {
	cmd.Execute()
}
