package email

// Шаблон приветственного письма.
// Подстановки: имя, фамилия, email, ссылка на вход, год.
const welcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #333;">Bienvenue sur Lounge Africa</h1>
  </div>

  <div style="margin-bottom: 30px;">
    <p>Bonjour %s %s,</p>
    <p>Nous sommes ravis de vous informer qu'un compte a été créé pour vous sur la plateforme Lounge Africa.</p>
    <p>Vous pouvez dès maintenant vous connecter à votre espace personnel pour accéder à nos salons VIP dans les aéroports en Afrique et profiter de nos services exclusifs.</p>
  </div>

  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
    <p style="margin-bottom: 10px;"><strong>Vos informations de connexion :</strong></p>
    <p style="margin: 5px 0;">Email : %s</p>
    <p style="margin: 5px 0;">Mot de passe : Celui qui vous a été communiqué par votre administrateur</p>
  </div>

  <div style="margin-bottom: 30px;">
    <p>Nous vous recommandons de changer votre mot de passe lors de votre première connexion.</p>
    <p>Pour vous connecter, cliquez sur le bouton ci-dessous :</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s/auth/login" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 4px; font-weight: bold;">Se connecter</a>
    </div>
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0; text-align: center; color: #666; font-size: 14px;">
    <p>Si vous avez des questions, n'hésitez pas à nous contacter à l'adresse <a href="mailto:support@lounge-africa.com">support@lounge-africa.com</a>.</p>
    <p>&copy; %d Lounge Africa. Tous droits réservés.</p>
  </div>
</div>
`
