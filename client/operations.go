package client

import "context"

// Typed helpers over Do for the operations the site uses.

const signUpMutation = `mutation ($input: SignUpInput!) {
  signUp(signUpInput: $input) { id username email }
}`

func (c *Client) SignUp(ctx context.Context, email, username, password string) (*User, error) {
	var resp struct {
		SignUp *User `json:"signUp"`
	}
	err := c.Do(ctx, signUpMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"email":    email,
			"username": username,
			"password": password,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.SignUp, nil
}

const loginMutation = `mutation ($input: LoginInput!) {
  login(loginInput: $input) {
    errors { field message }
    user { id username email }
    accessToken
  }
}`

// Login authenticates and, on success, caches the access token. The refresh
// token arrives as a cookie and lands in the jar automatically.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (*LoginResult, error) {
	var resp struct {
		Login *LoginResult `json:"login"`
	}
	err := c.Do(ctx, loginMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"emailOrUsername": emailOrUsername,
			"password":        password,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Login != nil && resp.Login.AccessToken != "" {
		c.setAccessToken(resp.Login.AccessToken)
	}
	return resp.Login, nil
}

const logoutMutation = `mutation { logout }`

// Logout revokes the server-side session and clears the local token cache.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Do(ctx, logoutMutation, nil, nil)
	c.setAccessToken("")
	return err
}

// RefreshAccessToken forces a renewal, outside of the automatic retry path.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	return c.renewAccessToken(ctx)
}

const filmsQuery = `query ($limit: Int, $cursor: Int) {
  films(limit: $limit, cursor: $cursor) {
    films {
      id title subtitle genre runningTime release posterImg description
      director { id name }
    }
    cursor
  }
}`

func (c *Client) Films(ctx context.Context, limit, cursor int) (*PaginatedFilms, error) {
	var resp struct {
		Films *PaginatedFilms `json:"films"`
	}
	err := c.Do(ctx, filmsQuery, map[string]interface{}{
		"limit":  limit,
		"cursor": cursor,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Films, nil
}

const cutsQuery = `query ($filmId: Int!) {
  cuts(filmId: $filmId) { id src filmId votesCount isVoted }
}`

func (c *Client) Cuts(ctx context.Context, filmID int) ([]*Cut, error) {
	var resp struct {
		Cuts []*Cut `json:"cuts"`
	}
	err := c.Do(ctx, cutsQuery, map[string]interface{}{"filmId": filmID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Cuts, nil
}

const voteMutation = `mutation ($cutId: Int!) {
  vote(cutId: $cutId)
}`

func (c *Client) Vote(ctx context.Context, cutID int) (bool, error) {
	var resp struct {
		Vote bool `json:"vote"`
	}
	err := c.Do(ctx, voteMutation, map[string]interface{}{"cutId": cutID}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Vote, nil
}

const cutReviewsQuery = `query ($cutId: Int!, $take: Int, $skip: Int) {
  cutReviews(cutId: $cutId, take: $take, skip: $skip) {
    id cutId contents isMine
    user { id username }
  }
}`

func (c *Client) CutReviews(ctx context.Context, cutID, take, skip int) ([]*CutReview, error) {
	var resp struct {
		CutReviews []*CutReview `json:"cutReviews"`
	}
	err := c.Do(ctx, cutReviewsQuery, map[string]interface{}{
		"cutId": cutID,
		"take":  take,
		"skip":  skip,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.CutReviews, nil
}

const createOrUpdateCutReviewMutation = `mutation ($input: CreateOrUpdateCutReviewInput!) {
  createOrUpdateCutReview(cutReviewInput: $input) { id cutId contents isMine }
}`

func (c *Client) CreateOrUpdateCutReview(ctx context.Context, cutID int, contents string) (*CutReview, error) {
	var resp struct {
		CreateOrUpdateCutReview *CutReview `json:"createOrUpdateCutReview"`
	}
	err := c.Do(ctx, createOrUpdateCutReviewMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"cutId":    cutID,
			"contents": contents,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.CreateOrUpdateCutReview, nil
}

const deleteReviewMutation = `mutation ($id: Int!) {
  deleteReview(id: $id)
}`

func (c *Client) DeleteReview(ctx context.Context, id int) (bool, error) {
	var resp struct {
		DeleteReview bool `json:"deleteReview"`
	}
	err := c.Do(ctx, deleteReviewMutation, map[string]interface{}{"id": id}, &resp)
	if err != nil {
		return false, err
	}
	return resp.DeleteReview, nil
}

const meQuery = `query { me { id username email profileImage } }`

func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		Me *User `json:"me"`
	}
	err := c.Do(ctx, meQuery, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Me, nil
}
