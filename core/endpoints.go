// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"codeberg.org/pixivcli/pixivcli/config"
)

// Default pagination for the query operations.
const (
	DefaultUserWorksPerPage = 9999
	DefaultRankingPerPage   = 100
	DefaultPage             = 1
)

// publicAPIBase is overridable for tests.
var publicAPIBase = "https://public-api.secure.pixiv.net/v1"

// GET endpoints

func GetUserWorksURL(userID string, perPage, page int) string {
	base := "%s/users/%s/works.json?%s"

	return fmt.Sprintf(base, publicAPIBase, userID, commonParams(perPage, page).Encode())
}

func GetIllustURL(illustID string) string {
	base := "%s/works/%s.json?%s"

	return fmt.Sprintf(base, publicAPIBase, illustID, commonParams(0, 0).Encode())
}

func GetRankingURL(mode, date string, perPage, page int) string {
	params := commonParams(perPage, page)
	params.Add("mode", mode)

	if date != "" {
		params.Add("date", date)
	}

	return publicAPIBase + "/ranking/all?" + params.Encode()
}

// commonParams builds the parameter set shared by every query: pagination,
// the statistics and content-sanity flags, and the image-size selector
// lists. Zero pagination values are omitted.
func commonParams(perPage, page int) url.Values {
	params := url.Values{}

	if page > 0 {
		params.Add("page", strconv.Itoa(page))
	}

	if perPage > 0 {
		params.Add("per_page", strconv.Itoa(perPage))
	}

	params.Add("include_stats", "true")
	params.Add("include_sanity_level", "true")
	params.Add("image_sizes", strings.Join(config.Global.Client.ImageSizes, ","))
	params.Add("profile_image_sizes", strings.Join(config.Global.Client.ProfileImageSizes, ","))

	return params
}
