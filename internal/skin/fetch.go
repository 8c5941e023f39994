package skin

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	profileURL = "https://api.mojang.com/users/profiles/minecraft/%s"
	sessionURL = "https://sessionserver.mojang.com/session/minecraft/profile/%s"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,16}$`)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Acquire loads a normalized skin from a file path, an http(s) URL, or a
// player username (resolved through the profile service).
func Acquire(source string) (*image.NRGBA, error) {
	if _, err := os.Stat(source); err == nil {
		return Load(source)
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(source)
	}
	if usernameRe.MatchString(source) {
		return fetchUsername(source)
	}
	return nil, fmt.Errorf("skin: invalid source %q (not a file, URL, or username)", source)
}

func fetchURL(url string) (*image.NRGBA, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("skin: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("skin: fetch %s: status %s", url, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("skin: fetch %s: %w", url, err)
	}
	return Decode(raw)
}

func fetchUsername(name string) (*image.NRGBA, error) {
	var profile struct {
		ID string `json:"id"`
	}
	if err := getJSON(fmt.Sprintf(profileURL, name), &profile); err != nil {
		return nil, fmt.Errorf("skin: lookup user %q: %w", name, err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("skin: user %q not found", name)
	}

	var session struct {
		Properties []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"properties"`
	}
	if err := getJSON(fmt.Sprintf(sessionURL, profile.ID), &session); err != nil {
		return nil, fmt.Errorf("skin: profile for %q: %w", name, err)
	}

	for _, prop := range session.Properties {
		if prop.Name != "textures" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(prop.Value)
		if err != nil {
			return nil, fmt.Errorf("skin: textures property for %q: %w", name, err)
		}
		var tex struct {
			Textures struct {
				Skin struct {
					URL string `json:"url"`
				} `json:"SKIN"`
			} `json:"textures"`
		}
		if err := json.Unmarshal(decoded, &tex); err != nil {
			return nil, fmt.Errorf("skin: textures property for %q: %w", name, err)
		}
		if tex.Textures.Skin.URL == "" {
			break
		}
		return fetchURL(tex.Textures.Skin.URL)
	}
	return nil, fmt.Errorf("skin: no skin texture for user %q", name)
}

func getJSON(url string, v any) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
