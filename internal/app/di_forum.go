package app

import (
	"fmt"

	answerHTTP "github.com/allisson/forumhub/internal/answer/http"
	answerRepository "github.com/allisson/forumhub/internal/answer/repository"
	answerUsecase "github.com/allisson/forumhub/internal/answer/usecase"
	courseHTTP "github.com/allisson/forumhub/internal/course/http"
	courseRepository "github.com/allisson/forumhub/internal/course/repository"
	courseUsecase "github.com/allisson/forumhub/internal/course/usecase"
	topicHTTP "github.com/allisson/forumhub/internal/topic/http"
	topicRepository "github.com/allisson/forumhub/internal/topic/repository"
	topicUsecase "github.com/allisson/forumhub/internal/topic/usecase"
	userHTTP "github.com/allisson/forumhub/internal/user/http"
	userRepository "github.com/allisson/forumhub/internal/user/repository"
	userUsecase "github.com/allisson/forumhub/internal/user/usecase"
)

// UserRepository returns the user repository based on the database driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// ProfileRepository returns the profile repository based on the database driver.
func (c *Container) ProfileRepository() (userUsecase.ProfileRepository, error) {
	var err error
	c.profileRepoInit.Do(func() {
		c.profileRepo, err = c.initProfileRepository()
		if err != nil {
			c.initErrors["profileRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileRepo"]; exists {
		return nil, storedErr
	}
	return c.profileRepo, nil
}

// CourseRepository returns the course repository based on the database driver.
func (c *Container) CourseRepository() (courseUsecase.CourseRepository, error) {
	var err error
	c.courseRepoInit.Do(func() {
		c.courseRepo, err = c.initCourseRepository()
		if err != nil {
			c.initErrors["courseRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["courseRepo"]; exists {
		return nil, storedErr
	}
	return c.courseRepo, nil
}

// TopicRepository returns the topic repository based on the database driver.
func (c *Container) TopicRepository() (topicUsecase.TopicRepository, error) {
	var err error
	c.topicRepoInit.Do(func() {
		c.topicRepo, err = c.initTopicRepository()
		if err != nil {
			c.initErrors["topicRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["topicRepo"]; exists {
		return nil, storedErr
	}
	return c.topicRepo, nil
}

// AnswerRepository returns the answer repository based on the database driver.
func (c *Container) AnswerRepository() (answerUsecase.AnswerRepository, error) {
	var err error
	c.answerRepoInit.Do(func() {
		c.answerRepo, err = c.initAnswerRepository()
		if err != nil {
			c.initErrors["answerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["answerRepo"]; exists {
		return nil, storedErr
	}
	return c.answerRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// CourseUseCase returns the course use case instance.
func (c *Container) CourseUseCase() (courseUsecase.UseCase, error) {
	var err error
	c.courseUseCaseInit.Do(func() {
		c.courseUseCase, err = c.initCourseUseCase()
		if err != nil {
			c.initErrors["courseUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["courseUseCase"]; exists {
		return nil, storedErr
	}
	return c.courseUseCase, nil
}

// TopicUseCase returns the topic use case instance.
func (c *Container) TopicUseCase() (topicUsecase.UseCase, error) {
	var err error
	c.topicUseCaseInit.Do(func() {
		c.topicUseCase, err = c.initTopicUseCase()
		if err != nil {
			c.initErrors["topicUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["topicUseCase"]; exists {
		return nil, storedErr
	}
	return c.topicUseCase, nil
}

// AnswerUseCase returns the answer use case instance.
func (c *Container) AnswerUseCase() (answerUsecase.UseCase, error) {
	var err error
	c.answerUseCaseInit.Do(func() {
		c.answerUseCase, err = c.initAnswerUseCase()
		if err != nil {
			c.initErrors["answerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["answerUseCase"]; exists {
		return nil, storedErr
	}
	return c.answerUseCase, nil
}

// UserHandler returns the HTTP handler for user management operations.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.initErrors["userHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// CourseHandler returns the HTTP handler for course operations.
func (c *Container) CourseHandler() (*courseHTTP.CourseHandler, error) {
	var err error
	c.courseHandlerInit.Do(func() {
		c.courseHandler, err = c.initCourseHandler()
		if err != nil {
			c.initErrors["courseHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["courseHandler"]; exists {
		return nil, storedErr
	}
	return c.courseHandler, nil
}

// TopicHandler returns the HTTP handler for topic operations.
func (c *Container) TopicHandler() (*topicHTTP.TopicHandler, error) {
	var err error
	c.topicHandlerInit.Do(func() {
		c.topicHandler, err = c.initTopicHandler()
		if err != nil {
			c.initErrors["topicHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["topicHandler"]; exists {
		return nil, storedErr
	}
	return c.topicHandler, nil
}

// AnswerHandler returns the HTTP handler for answer operations.
func (c *Container) AnswerHandler() (*answerHTTP.AnswerHandler, error) {
	var err error
	c.answerHandlerInit.Do(func() {
		c.answerHandler, err = c.initAnswerHandler()
		if err != nil {
			c.initErrors["answerHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["answerHandler"]; exists {
		return nil, storedErr
	}
	return c.answerHandler, nil
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProfileRepository creates the profile repository based on the database driver.
func (c *Container) initProfileRepository() (userUsecase.ProfileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for profile repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return userRepository.NewPostgreSQLProfileRepository(db), nil
	case "mysql":
		return userRepository.NewMySQLProfileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCourseRepository creates the course repository based on the database driver.
func (c *Container) initCourseRepository() (courseUsecase.CourseRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for course repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return courseRepository.NewPostgreSQLCourseRepository(db), nil
	case "mysql":
		return courseRepository.NewMySQLCourseRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTopicRepository creates the topic repository based on the database driver.
func (c *Container) initTopicRepository() (topicUsecase.TopicRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for topic repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return topicRepository.NewPostgreSQLTopicRepository(db), nil
	case "mysql":
		return topicRepository.NewMySQLTopicRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAnswerRepository creates the answer repository based on the database driver.
func (c *Container) initAnswerRepository() (answerUsecase.AnswerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for answer repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return answerRepository.NewPostgreSQLAnswerRepository(db), nil
	case "mysql":
		return answerRepository.NewMySQLAnswerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	profileRepo, err := c.ProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile repository for user use case: %w", err)
	}

	useCase, err := userUsecase.NewUserUseCase(txManager, userRepo, profileRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create user use case: %w", err)
	}

	return useCase, nil
}

// initCourseUseCase creates the course use case with all its dependencies.
func (c *Container) initCourseUseCase() (courseUsecase.UseCase, error) {
	courseRepo, err := c.CourseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get course repository for course use case: %w", err)
	}

	return courseUsecase.NewCourseUseCase(courseRepo), nil
}

// initTopicUseCase creates the topic use case with all its dependencies.
func (c *Container) initTopicUseCase() (topicUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for topic use case: %w", err)
	}

	topicRepo, err := c.TopicRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic repository for topic use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for topic use case: %w", err)
	}

	courseRepo, err := c.CourseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get course repository for topic use case: %w", err)
	}

	answerRepo, err := c.AnswerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer repository for topic use case: %w", err)
	}

	return topicUsecase.NewTopicUseCase(txManager, topicRepo, userRepo, courseRepo, answerRepo), nil
}

// initAnswerUseCase creates the answer use case with all its dependencies.
func (c *Container) initAnswerUseCase() (answerUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for answer use case: %w", err)
	}

	answerRepo, err := c.AnswerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer repository for answer use case: %w", err)
	}

	topicRepo, err := c.TopicRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic repository for answer use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for answer use case: %w", err)
	}

	answerTopicRepo, ok := topicRepo.(answerUsecase.TopicRepository)
	if !ok {
		return nil, fmt.Errorf("topic repository %T does not implement the answer use case's TopicRepository", topicRepo)
	}

	return answerUsecase.NewAnswerUseCase(txManager, answerRepo, answerTopicRepo, userRepo), nil
}

// initUserHandler creates the user HTTP handler with all its dependencies.
func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}

	return userHTTP.NewUserHandler(userUseCase, c.Logger()), nil
}

// initCourseHandler creates the course HTTP handler with all its dependencies.
func (c *Container) initCourseHandler() (*courseHTTP.CourseHandler, error) {
	courseUseCase, err := c.CourseUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get course use case for course handler: %w", err)
	}

	return courseHTTP.NewCourseHandler(courseUseCase, c.Logger()), nil
}

// initTopicHandler creates the topic HTTP handler with all its dependencies.
func (c *Container) initTopicHandler() (*topicHTTP.TopicHandler, error) {
	topicUseCase, err := c.TopicUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic use case for topic handler: %w", err)
	}

	return topicHTTP.NewTopicHandler(topicUseCase, c.Logger()), nil
}

// initAnswerHandler creates the answer HTTP handler with all its dependencies.
func (c *Container) initAnswerHandler() (*answerHTTP.AnswerHandler, error) {
	answerUseCase, err := c.AnswerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer use case for answer handler: %w", err)
	}

	return answerHTTP.NewAnswerHandler(answerUseCase, c.Logger()), nil
}
